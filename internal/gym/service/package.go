package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
	"github.com/aussiebroadwan/gymdesk/internal/gym/store"
	"github.com/aussiebroadwan/gymdesk/pkg/idx"
)

type PackageService struct {
	Store store.Store
	Clock Clock
}

type PackageInput struct {
	Name         string
	Description  string
	Price        decimal.Decimal
	BillingCycle string
	Features     []string
}

type PackagePatch struct {
	Name         *string
	Description  *string
	Price        *decimal.Decimal
	BillingCycle *string
	Features     *[]string
	IsActive     *bool
}

func (s *PackageService) Create(ctx context.Context, adminID string, in PackageInput) (domain.Package, error) {
	now := s.Clock.now()
	p := domain.Package{
		ID:           idx.NewAt(now).String(),
		AdminID:      adminID,
		Name:         strings.TrimSpace(in.Name),
		Description:  strings.TrimSpace(in.Description),
		Price:        in.Price,
		BillingCycle: strings.ToLower(strings.TrimSpace(in.BillingCycle)),
		Features:     cleanFeatures(in.Features),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := validatePackage(p); err != nil {
		return domain.Package{}, err
	}
	if err := s.Store.Packages().CreatePackage(ctx, p); err != nil {
		return domain.Package{}, err
	}
	return p, nil
}

func (s *PackageService) List(ctx context.Context, adminID string) ([]domain.Package, error) {
	return s.Store.Packages().ListPackages(ctx, adminID)
}

func (s *PackageService) Update(ctx context.Context, adminID, id string, patch PackagePatch) (domain.Package, error) {
	p, err := s.Store.Packages().GetPackage(ctx, adminID, id)
	if err != nil {
		return domain.Package{}, err
	}
	patchString(&p.Name, patch.Name)
	patchString(&p.Description, patch.Description)
	if patch.BillingCycle != nil {
		p.BillingCycle = strings.ToLower(strings.TrimSpace(*patch.BillingCycle))
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Features != nil {
		p.Features = cleanFeatures(*patch.Features)
	}
	if patch.IsActive != nil {
		p.IsActive = *patch.IsActive
	}
	if err := validatePackage(p); err != nil {
		return domain.Package{}, err
	}
	p.UpdatedAt = s.Clock.now()

	if err := s.Store.Packages().UpdatePackage(ctx, p); err != nil {
		return domain.Package{}, err
	}
	return p, nil
}

// Delete removes the package. Bills keep their amount and lose the link.
func (s *PackageService) Delete(ctx context.Context, adminID, id string) error {
	return s.Store.Packages().DeletePackage(ctx, adminID, id)
}

func validatePackage(p domain.Package) error {
	switch {
	case p.Name == "":
		return invalid("name is required")
	case p.BillingCycle == "":
		return invalid("billing cycle is required")
	case p.Price.IsNegative():
		return invalid("price must not be negative")
	}
	return nil
}

// cleanFeatures drops blank entries; the result is never nil.
func cleanFeatures(in []string) []string {
	out := make([]string, 0, len(in))
	for _, f := range in {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
