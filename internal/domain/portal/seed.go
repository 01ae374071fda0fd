package portal

// Snapshot is one complete copy of the portal dataset. The mock backend owns
// a mutable one per session; the server seeds its store from a fresh one.
type Snapshot struct {
	User     User
	Plans    []Plan
	Invoices []Invoice
	Claims   []Claim
	News     []NewsItem
}

// Clone returns a deep copy so one snapshot can never leak mutations into
// another (one store instance per test/session).
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		User:     s.User,
		Plans:    make([]Plan, len(s.Plans)),
		Invoices: append([]Invoice(nil), s.Invoices...),
		Claims:   append([]Claim(nil), s.Claims...),
		News:     append([]NewsItem(nil), s.News...),
	}
	for i, p := range s.Plans {
		p.Features = append([]string(nil), p.Features...)
		out.Plans[i] = p
	}
	return out
}

// SeedSnapshot returns a fresh copy of the fixed demo dataset.
func SeedSnapshot() *Snapshot {
	seed := &Snapshot{
		User: User{
			ID:     "user-001",
			Name:   "Juan Pérez",
			Email:  "juan.perez@example.com",
			PlanID: 2,
		},
		Plans: []Plan{
			{ID: 1, Name: "Básico Fibra", Speed: "50 Mbps", Price: 3500, Features: []string{"Navegación ilimitada", "Soporte técnico 24/7"}},
			{ID: 2, Name: "Plus Fibra", Speed: "100 Mbps", Price: 4800, Features: []string{"Navegación ilimitada", "Soporte técnico prioritario", "IP fija opcional"}},
			{ID: 3, Name: "Premium Fibra", Speed: "300 Mbps", Price: 6200, Features: []string{"Navegación ilimitada", "Soporte técnico prioritario", "IP fija incluida"}},
		},
		Invoices: []Invoice{
			{ID: "inv-001", Period: "Mayo 2024", DueDate: "2024-06-10", Amount: 4800, Status: InvoiceStatusPending, DownloadURL: "#"},
			{ID: "inv-002", Period: "Abril 2024", DueDate: "2024-05-10", Amount: 4800, Status: InvoiceStatusPaid, DownloadURL: "#"},
			{ID: "inv-003", Period: "Marzo 2024", DueDate: "2024-04-10", Amount: 3500, Status: InvoiceStatusPaid, DownloadURL: "#"},
		},
		Claims: []Claim{
			{ID: "clm-001", Date: "2024-05-20", Type: "Técnico", Description: "Baja velocidad de internet por las noches.", Status: ClaimStatusInProgress},
			{ID: "clm-002", Date: "2024-04-15", Type: "Facturación", Description: "Duda sobre un cargo extra en la factura.", Status: ClaimStatusClosed},
		},
		News: []NewsItem{
			{ID: "news-1", Date: "2024-06-01", Title: "¡Nuevos planes con más velocidad!", Content: "Hemos actualizado nuestros planes de fibra óptica para ofrecerte una experiencia de navegación aún más rápida. ¡Consulta la sección de planes para ver las novedades!"},
			{ID: "news-2", Date: "2024-05-15", Title: "Mantenimiento programado de la red", Content: "Se realizará un mantenimiento en nuestra red el día 25 de Mayo de 2 a 4 AM para mejorar la calidad del servicio. Es posible que experimente breves interrupciones."},
		},
	}
	return seed
}

// DemoClientNumber and DemoPassword are the single credential pair the demo
// dataset accepts.
const (
	DemoClientNumber = "C00001"
	DemoPassword     = "1234"
)
