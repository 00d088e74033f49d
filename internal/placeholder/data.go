// Package placeholder holds the fixed dashboard dataset written by the seeder.
package placeholder

type User struct {
	ID       string
	Name     string
	Email    string
	Password string
}

type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}

// Invoice amounts are in cents. A nil Amount is a record with the field missing.
type Invoice struct {
	CustomerID string
	Amount     *float64
	Status     string
	Date       string // YYYY-MM-DD
}

type Revenue struct {
	Month   string
	Revenue float64
}

// Dataset is everything one seeding run inserts.
type Dataset struct {
	Users     []User
	Customers []Customer
	Invoices  []Invoice
	Revenue   []Revenue
}

// Cents returns a pointer for an Invoice amount literal.
func Cents(v float64) *float64 {
	return &v
}

var (
	Users = []User{
		{
			ID:       "410544b2-4001-4271-9855-fec4b6a6442a",
			Name:     "User",
			Email:    "user@nextmail.com",
			Password: "123456",
		},
	}

	Customers = []Customer{
		{ID: "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
		{ID: "3958dc9e-712f-4377-85e9-fec4b6a6442a", Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
		{ID: "3958dc9e-742f-4377-85e9-fec4b6a6442a", Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
		{ID: "76d65c26-f784-44a2-ac19-586678f7c2f2", Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
		{ID: "CC27C14A-0ACF-4F4A-A6C9-D45682C144B9", Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
		{ID: "13D07535-C59E-4157-A011-F8D2EF4E0CBB", Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
	}

	Invoices = []Invoice{
		{CustomerID: Customers[0].ID, Amount: Cents(15795), Status: "pending", Date: "2022-12-06"},
		{CustomerID: Customers[1].ID, Amount: Cents(20348), Status: "pending", Date: "2022-11-14"},
		{CustomerID: Customers[4].ID, Amount: Cents(3040), Status: "paid", Date: "2022-10-29"},
		{CustomerID: Customers[3].ID, Amount: Cents(44800), Status: "paid", Date: "2023-09-10"},
		{CustomerID: Customers[5].ID, Amount: Cents(34577), Status: "pending", Date: "2023-08-05"},
		{CustomerID: Customers[2].ID, Amount: Cents(54246), Status: "pending", Date: "2023-07-16"},
		{CustomerID: Customers[0].ID, Amount: Cents(666), Status: "pending", Date: "2023-06-27"},
		{CustomerID: Customers[3].ID, Amount: Cents(32545), Status: "paid", Date: "2023-06-09"},
		{CustomerID: Customers[4].ID, Amount: Cents(1250), Status: "paid", Date: "2023-06-17"},
		{CustomerID: Customers[5].ID, Amount: Cents(8546), Status: "paid", Date: "2023-06-07"},
		{CustomerID: Customers[1].ID, Amount: Cents(500), Status: "paid", Date: "2023-08-19"},
		{CustomerID: Customers[5].ID, Amount: Cents(8945), Status: "paid", Date: "2023-06-03"},
		{CustomerID: Customers[2].ID, Amount: Cents(1000), Status: "paid", Date: "2022-06-05"},
	}

	Revenues = []Revenue{
		{Month: "Jan", Revenue: 2000},
		{Month: "Feb", Revenue: 1800},
		{Month: "Mar", Revenue: 2200},
		{Month: "Apr", Revenue: 2500},
		{Month: "May", Revenue: 2300},
		{Month: "Jun", Revenue: 3200},
		{Month: "Jul", Revenue: 3500},
		{Month: "Aug", Revenue: 3700},
		{Month: "Sep", Revenue: 2500},
		{Month: "Oct", Revenue: 2800},
		{Month: "Nov", Revenue: 3000},
		{Month: "Dec", Revenue: 4800},
	}
)

// Default returns the dashboard dataset.
func Default() Dataset {
	return Dataset{
		Users:     Users,
		Customers: Customers,
		Invoices:  Invoices,
		Revenue:   Revenues,
	}
}
