// Package dashboard implements a terminal view of the customer portal: it
// logs in, loads the dashboard data the way the portal's home screen does,
// and prints it.
package dashboard

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	portal "fibra/internal/application/portal"
	domain "fibra/internal/domain/portal"
	"fibra/internal/infrastructure/config"
	"fibra/internal/shared/logger"
	"fibra/internal/shared/utils"
)

var (
	env          string
	clientNumber string
	password     string
	showNews     bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the customer dashboard",
		Long:  `Log in to the portal and print the customer's plan, invoices and claims.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&clientNumber, "client", "c", domain.DemoClientNumber, "Client number")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted when omitted)")
	cmd.Flags().BoolVar(&showNews, "news", false, "Include news in the output")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if password == "" {
		password, err = readPassword()
		if err != nil {
			return err
		}
	}

	svc := portal.NewServiceFromConfig(&cfg.API, nil)
	ctx := cmd.Context()

	user, err := svc.Login(ctx, clientNumber, password)
	if err != nil {
		return err
	}
	defer svc.Logout()

	fmt.Printf("Hola, %s\n\n", user.Name)

	// The home screen loads the plan and the invoices concurrently.
	var (
		wg          sync.WaitGroup
		plan        *domain.Plan
		invoices    []domain.Invoice
		planErr     error
		invoicesErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		plan, planErr = svc.CurrentPlan(ctx)
	}()
	go func() {
		defer wg.Done()
		invoices, invoicesErr = svc.Invoices(ctx)
	}()
	wg.Wait()

	if planErr != nil {
		return planErr
	}
	if invoicesErr != nil {
		return invoicesErr
	}

	fmt.Printf("Tu plan: %s (%s, %s)\n", plan.Name, plan.Speed, utils.FormatPriceARS(plan.Price))
	if pending := domain.FindPendingInvoice(invoices); pending != nil {
		fmt.Printf("Factura pendiente: %s por %s, vence el %s\n",
			pending.Period, utils.FormatAmountARS(pending.Amount), pending.DueDate)
	} else {
		fmt.Println("No tenés facturas pendientes.")
	}

	claims, err := svc.Claims(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("\nReclamos (%d):\n", len(claims))
	for _, claim := range claims {
		fmt.Printf("  [%s] %s - %s (%s)\n", claim.Status, claim.Date, claim.Type, claim.ID)
	}

	if showNews {
		news, err := svc.News(ctx)
		if err != nil {
			return err
		}
		fmt.Println("\nNovedades:")
		for _, item := range news {
			fmt.Printf("  %s  %s\n", item.Date, item.Title)
		}
	}

	return nil
}

func readPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("no password given and stdin is not a terminal")
	}
	fmt.Print("Contraseña: ")
	raw, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(raw), nil
}
