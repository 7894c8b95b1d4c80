package cmd

import (
	"context"
	"fmt"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/settings"
)

// Fixed demo identities, so `token` can mint credentials matching seeded orders.
const (
	DemoAdminID     = "7f3c2a10-0d4e-4a8b-9c61-2b5e8f1a0001"
	DemoCustomerAID = "7f3c2a10-0d4e-4a8b-9c61-2b5e8f1a0002"
	DemoCustomerBID = "7f3c2a10-0d4e-4a8b-9c61-2b5e8f1a0003"
)

type demoProduct struct {
	name, description, category, image string
	price                              float64
	stock                              int
	featured                           bool
}

var demoCatalogue = []demoProduct{
	{"Saffron Milk Cake", "Premium saffron-infused sponge layered with light cream and pistachio.", "Cakes",
		"https://images.unsplash.com/photo-1578985545062-69928b1d9587?auto=format&fit=crop&w=1200&q=80", 899, 20, true},
	{"Belgian Chocolate Truffle", "Rich dark chocolate truffle cake with glossy ganache finish.", "Cakes",
		"https://images.unsplash.com/photo-1550617931-e17a7b70dce2?auto=format&fit=crop&w=1200&q=80", 1049, 16, true},
	{"Mango Velvet Cake", "Seasonal mango mousse cake with tropical fruit topping.", "Cakes",
		"https://images.unsplash.com/photo-1464306076886-debca5e8a6b0?auto=format&fit=crop&w=1200&q=80", 949, 15, true},
	{"Croissant Butter Classic", "Flaky laminated pastry crafted with cultured butter.", "Pastries",
		"https://images.unsplash.com/photo-1614707267537-b85aaf00c4b7?auto=format&fit=crop&w=1200&q=80", 149, 40, false},
	{"Almond Cinnamon Roll", "Soft cinnamon roll finished with almond glaze.", "Pastries",
		"https://images.unsplash.com/photo-1509440159596-0249088772ff?auto=format&fit=crop&w=1200&q=80", 189, 32, false},
	{"Paneer Puff Masala", "Golden puff pastry filled with spiced paneer and herbs.", "Savories",
		"https://images.unsplash.com/photo-1608198093002-ad4e005484ec?auto=format&fit=crop&w=1200&q=80", 129, 45, false},
	{"Garlic Herb Focaccia", "Stone-baked focaccia with roasted garlic and rosemary.", "Breads",
		"https://images.unsplash.com/photo-1598373182133-52452f7691ef?auto=format&fit=crop&w=1200&q=80", 249, 22, false},
	{"Multigrain Loaf", "Nutrient-rich multigrain bread, naturally fermented.", "Breads",
		"https://images.unsplash.com/photo-1608198093002-ad4e005484ec?auto=format&fit=crop&w=1200&q=80", 219, 28, false},
	{"Orange Zest Cookies", "Buttery cookies with natural orange zest and vanilla.", "Cookies",
		"https://images.unsplash.com/photo-1499636136210-6f4ee915583e?auto=format&fit=crop&w=1200&q=80", 199, 60, true},
	{"Choco Chunk Cookies", "Crisp-edged cookies loaded with premium chocolate chunks.", "Cookies",
		"https://images.unsplash.com/photo-1495214783159-3503fd1b572d?auto=format&fit=crop&w=1200&q=80", 229, 52, false},
	{"Hazelnut Brownie Box", "Fudgy brownies with toasted hazelnuts in a gift-ready box.", "Desserts",
		"https://images.unsplash.com/photo-1606313564200-e75d5e30476c?auto=format&fit=crop&w=1200&q=80", 349, 30, true},
	{"Vanilla Celebration Cupcakes", "Soft vanilla cupcakes with whipped orange-cream frosting.", "Cupcakes",
		"https://images.unsplash.com/photo-1486427944299-d1955d23e34d?auto=format&fit=crop&w=1200&q=80", 299, 24, false},
}

// SeedReport summarises what Seed wrote.
type SeedReport struct {
	Products int
	Orders   int
}

// Seed configures UPI and, on an empty catalogue, creates the demo products
// and two demo orders. It goes through the regular command handlers, so the
// demo orders reserve stock and land in the outbox like real ones.
func Seed(ctx context.Context, root *CompositionRoot) (SeedReport, error) {
	var report SeedReport

	admin, err := demoActor(DemoAdminID, kernel.RoleAdmin)
	if err != nil {
		return report, err
	}

	enabled := true
	upiID, phone := "mama.bakery@okhdfcbank", "+91 9876543210"
	instructions := "Scan the QR, complete payment, then click 'I have completed payment'. " +
		"Orders are verified within 10-20 minutes."
	qr := "https://images.unsplash.com/photo-1580927752452-89d86da3fa0a?auto=format&fit=crop&w=1200&q=80"
	upiCmd, err := commands.NewUpdateUPISettingsCommand(admin, settings.UPIChanges{
		Enabled: &enabled, UPIID: &upiID, Phone: &phone, QRImage: &qr, Instructions: &instructions,
	})
	if err != nil {
		return report, err
	}
	if _, err = root.CreateUpdateUPISettingsCommandHandler().Handle(ctx, upiCmd); err != nil {
		return report, fmt.Errorf("seed settings: %w", err)
	}

	existing, err := root.CreateListProductsQueryHandler().Handle(ctx, queries.NewListProductsQuery("", nil))
	if err != nil {
		return report, err
	}
	if len(existing) > 0 {
		return report, nil
	}

	createProduct := root.CreateCreateProductCommandHandler()
	ids := make([]string, 0, len(demoCatalogue))
	for _, p := range demoCatalogue {
		cmd, err := commands.NewCreateProductCommand(admin, commands.ProductFields{
			Name: &p.name, Description: &p.description, Category: &p.category,
			Price: &p.price, Stock: &p.stock, Image: &p.image, Featured: &p.featured,
		})
		if err != nil {
			return report, err
		}
		created, err := createProduct.Handle(ctx, cmd)
		if err != nil {
			return report, fmt.Errorf("seed product %q: %w", p.name, err)
		}
		ids = append(ids, created.ID().String())
		report.Products++
	}

	if err = seedOrders(ctx, root, admin, ids); err != nil {
		return report, err
	}
	report.Orders = 2

	return report, nil
}

func seedOrders(ctx context.Context, root *CompositionRoot, admin kernel.Actor, productIDs []string) error {
	customerA, err := demoActor(DemoCustomerAID, kernel.RoleCustomer)
	if err != nil {
		return err
	}
	customerB, err := demoActor(DemoCustomerBID, kernel.RoleCustomer)
	if err != nil {
		return err
	}

	fee := 49.0
	placeOrder := root.CreateCreateOrderCommandHandler()

	upiOrder, err := commands.NewCreateOrderCommand(customerA,
		[]commands.CreateOrderItem{{ProductID: productIDs[0], Quantity: 1}, {ProductID: productIDs[8], Quantity: 2}},
		order.AddressFields{
			FullName: "Aarav Sharma", Phone: "9000000001",
			Line1: "12 Lake View Road", Line2: "Near Sunrise Mall",
			City: "Panaji", State: "Goa", PostalCode: "403001",
			Notes: "Call before delivery.",
		},
		"UPI", &fee, "Paid via Google Pay at 10:21 AM",
	)
	if err != nil {
		return err
	}
	if _, err = placeOrder.Handle(ctx, upiOrder); err != nil {
		return fmt.Errorf("seed UPI order: %w", err)
	}

	codOrder, err := commands.NewCreateOrderCommand(customerB,
		[]commands.CreateOrderItem{{ProductID: productIDs[1], Quantity: 1}},
		order.AddressFields{
			FullName: "Meera Kapoor", Phone: "9000000002",
			Line1: "45 Green Park", Line2: "Apt 8B",
			City: "Margao", State: "Goa", PostalCode: "403601",
		},
		"COD", &fee, "",
	)
	if err != nil {
		return err
	}
	placed, err := placeOrder.Handle(ctx, codOrder)
	if err != nil {
		return fmt.Errorf("seed COD order: %w", err)
	}

	confirm, err := commands.NewSetOrderStatusCommand(placed.ID().String(), admin, order.StatusConfirmed.String())
	if err != nil {
		return err
	}
	if _, err = root.CreateUpdateOrderCommandHandler().Handle(ctx, confirm); err != nil {
		return fmt.Errorf("confirm COD order: %w", err)
	}

	return nil
}

func demoActor(id string, role kernel.Role) (kernel.Actor, error) {
	uid, err := kernel.UUIDFromString(id)
	if err != nil {
		return kernel.Actor{}, err
	}
	return kernel.NewActor(uid, role)
}
