// Package order implements the order-submission workflow: validate and
// reshape the checkout payload, materialize the order through the atomic
// create_order database function, and hand confirmation emails to a
// background dispatcher without blocking the response.
package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ValidationError is a client-caused rejection; no remote call was made.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

func invalidf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// Mailer sends the order emails. Implementations live in internal/notify.
type Mailer interface {
	OrderConfirmation(ctx context.Context, o *Order, recipient string) error
	AdminAlert(ctx context.Context, o *Order) error
}

// Jobs runs work outside the request path. Enqueue must not block; it
// reports whether the job was accepted.
type Jobs interface {
	Enqueue(name string, fn func(context.Context) error) bool
}

type Service struct {
	repo     Repository
	mailer   Mailer
	jobs     Jobs
	validate *validator.Validate
	log      *slog.Logger
}

func NewService(repo Repository, mailer Mailer, jobs Jobs, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		repo:     repo,
		mailer:   mailer,
		jobs:     jobs,
		validate: newValidator(),
		log:      log,
	}
}

// newValidator reports field errors under their json names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Submit creates an order for userID from the checkout payload and returns
// the denormalized view. Submission is NOT idempotent: no deduplication key
// is accepted, so a retried request creates a second order.
func (s *Service) Submit(ctx context.Context, userID string, req *CreateOrderRequest) (*Order, error) {
	p, err := s.normalize(userID, req)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	view, err := s.repo.GetDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch created order %s: %w", id, err)
	}

	s.notifyCreated(view)
	return view, nil
}

// normalize validates the payload and reshapes it into the create_order
// contract. It never touches the repository.
func (s *Service) normalize(userID string, req *CreateOrderRequest) (CreateParams, error) {
	var p CreateParams

	addr := req.ShippingAddress
	if addr == nil {
		addr = req.ShippingAddressAlias
	}
	if addr == nil {
		return p, invalidf("shipping_address is required")
	}
	if err := s.validate.Struct(addr); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return p, invalidf("shipping_address.%s is required", verrs[0].Field())
		}
		return p, invalidf("shipping_address is invalid")
	}

	if len(req.Items) == 0 {
		return p, invalidf("items must be a non-empty array")
	}

	items := make([]CreateItem, 0, len(req.Items))
	total := decimal.Zero
	for i, it := range req.Items {
		if it.ProductID == "" {
			return p, invalidf("items[%d].product_id is required", i)
		}
		if it.Quantity <= 0 {
			return p, invalidf("items[%d].quantity must be a positive integer", i)
		}
		price := it.UnitPrice
		if price == nil {
			price = it.Price
		}
		if price == nil {
			return p, invalidf("items[%d].unit_price is required", i)
		}
		if price.IsNegative() {
			return p, invalidf("items[%d].unit_price must be non-negative", i)
		}
		unit := it.QuantityUnit
		if unit == "" {
			unit = DefaultQuantityUnit
		}
		items = append(items, CreateItem{
			ProductID:    it.ProductID,
			Quantity:     it.Quantity,
			QuantityUnit: unit,
			UnitPrice:    price.StringFixed(2),
		})
		total = total.Add(price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	if req.TotalAmount != nil {
		if req.TotalAmount.IsNegative() {
			return p, invalidf("total_amount must be non-negative")
		}
		total = *req.TotalAmount
	}

	return CreateParams{
		UserID:          userID,
		ShippingAddress: *addr,
		Items:           items,
		TotalAmount:     total.Round(2).StringFixed(2),
	}, nil
}

// notifyCreated fans out the customer confirmation and the admin alert.
// Both run off the request path; failures are logged by the dispatcher and
// never reach the caller.
func (s *Service) notifyCreated(o *Order) {
	recipient := o.ShippingAddress.Email
	s.jobs.Enqueue("order confirmation email", func(ctx context.Context) error {
		return s.mailer.OrderConfirmation(ctx, o, recipient)
	})
	s.jobs.Enqueue("admin order alert", func(ctx context.Context) error {
		return s.mailer.AdminAlert(ctx, o)
	})
}

// List returns all of userID's orders with embedded items, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Order, error) {
	out, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if out == nil {
		out = []Order{}
	}
	return out, nil
}

// Get fetches one order. An order owned by someone else yields ErrForbidden,
// deliberately distinct from ErrNotFound.
func (s *Service) Get(ctx context.Context, userID, id string) (*Order, error) {
	o, err := s.repo.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, ErrForbidden
	}
	return o, nil
}

// UpdateStatus moves an order to one of the five enumerated statuses and
// returns the refreshed view. Invalid values are rejected before any write.
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) (*Order, error) {
	if !ValidStatus(status) {
		return nil, invalidf("Invalid order status")
	}

	cur, err := s.repo.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if !transitionAllowed(cur.Status, status) {
		return nil, invalidf("Cannot change order status from %s to %s", cur.Status, status)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.repo.GetDetails(ctx, id)
}
