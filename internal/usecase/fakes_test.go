package usecase

import (
	"context"
	"strings"
	"time"

	"vetclinic-backend/internal/domain/entity"
	"vetclinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// In-memory repository fakes. They enforce the same uniqueness rules as
// the SQL schema so the usecases can be tested without a database.

type fakeOwnerRepo struct {
	owners map[uuid.UUID]entity.Owner
}

func newFakeOwnerRepo() *fakeOwnerRepo {
	return &fakeOwnerRepo{owners: make(map[uuid.UUID]entity.Owner)}
}

func (r *fakeOwnerRepo) Create(_ context.Context, owner *entity.Owner) error {
	for _, existing := range r.owners {
		if existing.DNI == owner.DNI {
			return repository.ErrDuplicateKey
		}
	}
	if owner.ID == uuid.Nil {
		owner.ID = uuid.New()
	}
	r.owners[owner.ID] = *owner
	return nil
}

func (r *fakeOwnerRepo) FindAll(_ context.Context) ([]entity.Owner, error) {
	out := make([]entity.Owner, 0, len(r.owners))
	for _, owner := range r.owners {
		out = append(out, owner)
	}
	return out, nil
}

func (r *fakeOwnerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Owner, error) {
	if owner, ok := r.owners[id]; ok {
		return &owner, nil
	}
	return nil, nil
}

func (r *fakeOwnerRepo) FindByDNI(_ context.Context, dni string) (*entity.Owner, error) {
	for _, owner := range r.owners {
		if owner.DNI == dni {
			match := owner
			return &match, nil
		}
	}
	return nil, nil
}

func (r *fakeOwnerRepo) Search(_ context.Context, filter repository.OwnerFilter) ([]entity.Owner, error) {
	var out []entity.Owner
	for _, owner := range r.owners {
		if filter.Name != "" && !strings.Contains(owner.Name, filter.Name) {
			continue
		}
		if filter.DNI != "" && owner.DNI != filter.DNI {
			continue
		}
		out = append(out, owner)
	}
	return out, nil
}

func (r *fakeOwnerRepo) Update(_ context.Context, owner *entity.Owner) error {
	r.owners[owner.ID] = *owner
	return nil
}

func (r *fakeOwnerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.owners, id)
	return nil
}

type fakeAnimalRepo struct {
	animals map[uuid.UUID]entity.Animal
}

func newFakeAnimalRepo() *fakeAnimalRepo {
	return &fakeAnimalRepo{animals: make(map[uuid.UUID]entity.Animal)}
}

func (r *fakeAnimalRepo) Create(_ context.Context, animal *entity.Animal) error {
	for _, existing := range r.animals {
		if existing.Name == animal.Name && existing.OwnerID == animal.OwnerID {
			return repository.ErrDuplicateKey
		}
	}
	if animal.ID == uuid.Nil {
		animal.ID = uuid.New()
	}
	r.animals[animal.ID] = *animal
	return nil
}

func (r *fakeAnimalRepo) FindAll(_ context.Context) ([]entity.Animal, error) {
	out := make([]entity.Animal, 0, len(r.animals))
	for _, animal := range r.animals {
		out = append(out, animal)
	}
	return out, nil
}

func (r *fakeAnimalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Animal, error) {
	if animal, ok := r.animals[id]; ok {
		return &animal, nil
	}
	return nil, nil
}

func (r *fakeAnimalRepo) FindByNameAndOwner(_ context.Context, name string, ownerID uuid.UUID) (*entity.Animal, error) {
	for _, animal := range r.animals {
		if animal.Name == name && animal.OwnerID == ownerID {
			match := animal
			return &match, nil
		}
	}
	return nil, nil
}

func (r *fakeAnimalRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.animals)), nil
}

func (r *fakeAnimalRepo) Update(_ context.Context, animal *entity.Animal) error {
	r.animals[animal.ID] = *animal
	return nil
}

func (r *fakeAnimalRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.animals, id)
	return nil
}

type fakeAppointmentRepo struct {
	appointments map[uuid.UUID]entity.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[uuid.UUID]entity.Appointment)}
}

func (r *fakeAppointmentRepo) slotTaken(candidate *entity.Appointment) bool {
	for id, existing := range r.appointments {
		if id == candidate.ID {
			continue
		}
		if existing.Date == candidate.Date && existing.Time == candidate.Time && existing.Room == candidate.Room {
			return true
		}
	}
	return false
}

func (r *fakeAppointmentRepo) Create(_ context.Context, appointment *entity.Appointment) error {
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	if r.slotTaken(appointment) {
		return repository.ErrDuplicateKey
	}
	r.appointments[appointment.ID] = *appointment
	return nil
}

func (r *fakeAppointmentRepo) FindAll(_ context.Context) ([]entity.Appointment, error) {
	out := make([]entity.Appointment, 0, len(r.appointments))
	for _, appointment := range r.appointments {
		out = append(out, appointment)
	}
	return out, nil
}

func (r *fakeAppointmentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Appointment, error) {
	if appointment, ok := r.appointments[id]; ok {
		return &appointment, nil
	}
	return nil, nil
}

func (r *fakeAppointmentRepo) Update(_ context.Context, appointment *entity.Appointment) error {
	if r.slotTaken(appointment) {
		return repository.ErrDuplicateKey
	}
	r.appointments[appointment.ID] = *appointment
	return nil
}

func (r *fakeAppointmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.appointments, id)
	return nil
}

func (r *fakeAppointmentRepo) MarkCompleted(_ context.Context, id uuid.UUID) (int64, error) {
	appointment, ok := r.appointments[id]
	if !ok || appointment.Completed {
		return 0, nil
	}
	appointment.Completed = true
	r.appointments[id] = appointment
	return 1, nil
}

type fakeInvoiceRepo struct {
	invoices      map[uuid.UUID]entity.Invoice
	markPaidCalls int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[uuid.UUID]entity.Invoice)}
}

func (r *fakeInvoiceRepo) Create(_ context.Context, invoice *entity.Invoice) error {
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}
	r.invoices[invoice.ID] = *invoice
	return nil
}

func (r *fakeInvoiceRepo) FindAll(_ context.Context, paid *bool) ([]entity.Invoice, error) {
	var out []entity.Invoice
	for _, invoice := range r.invoices {
		if paid != nil && invoice.Paid != *paid {
			continue
		}
		out = append(out, invoice)
	}
	return out, nil
}

func (r *fakeInvoiceRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Invoice, error) {
	if invoice, ok := r.invoices[id]; ok {
		return &invoice, nil
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) MarkPaid(_ context.Context, id uuid.UUID) error {
	r.markPaidCalls++
	invoice := r.invoices[id]
	invoice.Paid = true
	r.invoices[id] = invoice
	return nil
}

type fakeTreatmentRepo struct {
	treatments map[string]entity.Treatment
}

func newFakeTreatmentRepo() *fakeTreatmentRepo {
	return &fakeTreatmentRepo{treatments: make(map[string]entity.Treatment)}
}

func (r *fakeTreatmentRepo) Create(_ context.Context, treatment *entity.Treatment) error {
	if _, ok := r.treatments[treatment.Name]; ok {
		return repository.ErrDuplicateKey
	}
	if treatment.ID == uuid.Nil {
		treatment.ID = uuid.New()
	}
	r.treatments[treatment.Name] = *treatment
	return nil
}

func (r *fakeTreatmentRepo) FindAll(_ context.Context) ([]entity.Treatment, error) {
	out := make([]entity.Treatment, 0, len(r.treatments))
	for _, treatment := range r.treatments {
		out = append(out, treatment)
	}
	return out, nil
}

func (r *fakeTreatmentRepo) FindByName(_ context.Context, name string) (*entity.Treatment, error) {
	if treatment, ok := r.treatments[name]; ok {
		return &treatment, nil
	}
	return nil, nil
}

func (r *fakeTreatmentRepo) Update(_ context.Context, treatment *entity.Treatment) error {
	r.treatments[treatment.Name] = *treatment
	return nil
}

func (r *fakeTreatmentRepo) DeleteByName(_ context.Context, name string) (int64, error) {
	if _, ok := r.treatments[name]; !ok {
		return 0, nil
	}
	delete(r.treatments, name)
	return 1, nil
}

type fakeProductRepo struct {
	products map[string]entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]entity.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	if _, ok := r.products[product.Name]; ok {
		return repository.ErrDuplicateKey
	}
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	r.products[product.Name] = *product
	return nil
}

func (r *fakeProductRepo) FindAll(_ context.Context) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(r.products))
	for _, product := range r.products {
		out = append(out, product)
	}
	return out, nil
}

func (r *fakeProductRepo) FindByName(_ context.Context, name string) (*entity.Product, error) {
	if product, ok := r.products[name]; ok {
		return &product, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) Search(_ context.Context, name, category string) ([]entity.Product, error) {
	var out []entity.Product
	for _, product := range r.products {
		if name != "" && !strings.Contains(strings.ToLower(product.Name), strings.ToLower(name)) {
			continue
		}
		if category != "" && !strings.Contains(strings.ToLower(product.Category), strings.ToLower(category)) {
			continue
		}
		out = append(out, product)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.products[product.Name] = *product
	return nil
}

func (r *fakeProductRepo) DeleteByName(_ context.Context, name string) (int64, error) {
	if _, ok := r.products[name]; !ok {
		return 0, nil
	}
	delete(r.products, name)
	return 1, nil
}

func (r *fakeProductRepo) DecrementStock(_ context.Context, name string, quantity int) (int64, error) {
	product, ok := r.products[name]
	if !ok || product.Stock < quantity {
		return 0, nil
	}
	product.Stock -= quantity
	r.products[name] = product
	return 1, nil
}

type fakeProductSaleRepo struct {
	sales []entity.ProductSale
}

func (r *fakeProductSaleRepo) Create(_ context.Context, sale *entity.ProductSale) error {
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	if sale.SoldAt.IsZero() {
		sale.SoldAt = time.Now()
	}
	r.sales = append(r.sales, *sale)
	return nil
}

func (r *fakeProductSaleRepo) FindAll(_ context.Context) ([]entity.ProductSale, error) {
	return r.sales, nil
}

// Service fakes.

type staticPriceCatalog struct {
	prices        map[string]decimal.Decimal
	invalidations int
}

func (c *staticPriceCatalog) TreatmentPrices(_ context.Context) (map[string]decimal.Decimal, error) {
	return c.prices, nil
}

func (c *staticPriceCatalog) Invalidate(_ context.Context) {
	c.invalidations++
}

type recordingAudit struct {
	actions []string
}

func (a *recordingAudit) Record(_ context.Context, action string, _ entity.JSON) {
	a.actions = append(a.actions, action)
}

type fakeRenderer struct {
	document []byte
}

func (r *fakeRenderer) Render(_ *entity.Invoice, _ *entity.Owner) ([]byte, error) {
	return r.document, nil
}

type fakeMailer struct {
	to         string
	subject    string
	filename   string
	attachment []byte
	sends      int
}

func (m *fakeMailer) Send(to, subject, _ string, attachment []byte, filename string) error {
	m.to = to
	m.subject = subject
	m.filename = filename
	m.attachment = attachment
	m.sends++
	return nil
}
