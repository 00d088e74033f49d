package repository

import (
	"fmt"
	"time"

	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"gorm.io/datatypes"
)

type userDocument struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Password  string    `bson:"password"`
	CreatedAt time.Time `bson:"created_at"`
}

type customerDocument struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	ImageURL  string    `bson:"image_url"`
	CreatedAt time.Time `bson:"created_at"`
}

// Absent numbers are omitted so the collection validator rejects them.
type invoiceDocument struct {
	ID         string    `bson:"_id"`
	CustomerID string    `bson:"customer_id"`
	Amount     *float64  `bson:"amount,omitempty"`
	Status     string    `bson:"status"`
	Date       time.Time `bson:"date"`
	CreatedAt  time.Time `bson:"created_at"`
}

type revenueDocument struct {
	ID        string    `bson:"_id"`
	Month     string    `bson:"month"`
	Revenue   *float64  `bson:"revenue,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
}

type seedRunDocument struct {
	ID          string     `bson:"_id"`
	Status      string     `bson:"status"`
	StartedAt   time.Time  `bson:"started_at"`
	CompletedAt *time.Time `bson:"completed_at,omitempty"`
	Report      bson.M     `bson:"report,omitempty"`
	CreatedAt   time.Time  `bson:"created_at"`
}

func createdAt(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}

func newUserDocument(u *models.User) userDocument {
	return userDocument{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.Password,
		CreatedAt: createdAt(u.CreatedAt),
	}
}

func newCustomerDocument(c *models.Customer) customerDocument {
	return customerDocument{
		ID:        c.ID.String(),
		Name:      c.Name,
		Email:     c.Email,
		ImageURL:  c.ImageURL,
		CreatedAt: createdAt(c.CreatedAt),
	}
}

func newInvoiceDocument(inv *models.Invoice) invoiceDocument {
	return invoiceDocument{
		ID:         inv.ID.String(),
		CustomerID: inv.CustomerID.String(),
		Amount:     inv.Amount,
		Status:     inv.Status,
		Date:       inv.Date,
		CreatedAt:  createdAt(inv.CreatedAt),
	}
}

func newRevenueDocument(r *models.Revenue) revenueDocument {
	return revenueDocument{
		ID:        r.ID.String(),
		Month:     r.Month,
		Revenue:   r.Revenue,
		CreatedAt: createdAt(r.CreatedAt),
	}
}

func newSeedRunDocument(run *models.SeedRun) (seedRunDocument, error) {
	doc := seedRunDocument{
		ID:          run.ID.String(),
		Status:      run.Status,
		StartedAt:   run.StartedAt,
		CompletedAt: run.CompletedAt,
		CreatedAt:   createdAt(run.CreatedAt),
	}
	if len(run.Report) > 0 {
		if err := bson.UnmarshalExtJSON(run.Report, false, &doc.Report); err != nil {
			return doc, fmt.Errorf("error encoding seed run report: %w", err)
		}
	}
	return doc, nil
}

func (d seedRunDocument) model() (*models.SeedRun, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("error decoding seed run id: %w", err)
	}
	run := &models.SeedRun{
		ID:          id,
		Status:      d.Status,
		StartedAt:   d.StartedAt,
		CompletedAt: d.CompletedAt,
		CreatedAt:   d.CreatedAt,
	}
	if d.Report != nil {
		raw, err := bson.MarshalExtJSON(d.Report, false, false)
		if err != nil {
			return nil, fmt.Errorf("error decoding seed run report: %w", err)
		}
		run.Report = datatypes.JSON(raw)
	}
	return run, nil
}

type collectionSchema struct {
	name   string
	schema bson.M
	unique []string
}

func validator(props bson.M, required ...string) bson.M {
	return bson.M{
		"bsonType":   "object",
		"required":   required,
		"properties": props,
	}
}

func collectionSchemas() []collectionSchema {
	str := bson.M{"bsonType": "string", "minLength": 1}
	num := bson.M{"bsonType": "number"}

	return []collectionSchema{
		{
			name:   string(models.KindUser),
			schema: validator(bson.M{"name": str, "email": str, "password": str}, "name", "email", "password"),
			unique: []string{"email"},
		},
		{
			name:   string(models.KindCustomer),
			schema: validator(bson.M{"name": str, "email": str, "image_url": str}, "name", "email", "image_url"),
		},
		{
			name: string(models.KindInvoice),
			schema: validator(bson.M{
				"customer_id": str,
				"amount":      num,
				"status":      str,
				"date":        bson.M{"bsonType": "date"},
			}, "amount", "status", "date"),
		},
		{
			name:   string(models.KindRevenue),
			schema: validator(bson.M{"month": str, "revenue": num}, "month", "revenue"),
			unique: []string{"month"},
		},
	}
}
