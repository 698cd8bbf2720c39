package portals

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strings"

	"craftatlas/internal/app/ports"
)

var (
	ErrInvalidRequest = errors.New("invalid portal request")
	ErrBadAddress     = errors.New("portal address must be 12 hex glyphs")
)

// 12 glyphs, each one of the 16 portal symbols.
var addressPattern = regexp.MustCompile(`^[0-9A-F]{12}$`)

type UseCase struct {
	Portals ports.PortalRepository
}

type Request struct {
	ID      string
	Name    string
	Galaxy  string
	Address string
	Tags    []string
	Notes   string
}

type ListResponse struct {
	Portals []ports.PortalRecord `json:"portals"`
}

// Save upserts a portal entry. Addresses are normalized to uppercase before
// validation.
func (u UseCase) Save(ctx context.Context, req Request) (ports.PortalRecord, error) {
	if strings.TrimSpace(req.ID) == "" || strings.TrimSpace(req.Name) == "" {
		return ports.PortalRecord{}, ErrInvalidRequest
	}
	address := strings.ToUpper(strings.TrimSpace(req.Address))
	if !addressPattern.MatchString(address) {
		return ports.PortalRecord{}, ErrBadAddress
	}
	record := ports.PortalRecord{
		ID:      strings.TrimSpace(req.ID),
		Name:    strings.TrimSpace(req.Name),
		Galaxy:  strings.TrimSpace(req.Galaxy),
		Address: address,
		Tags:    req.Tags,
		Notes:   req.Notes,
	}
	if err := u.Portals.Save(ctx, record); err != nil {
		return ports.PortalRecord{}, err
	}
	return record, nil
}

func (u UseCase) Get(ctx context.Context, id string) (ports.PortalRecord, error) {
	return u.Portals.GetByID(ctx, id)
}

func (u UseCase) List(ctx context.Context) (ListResponse, error) {
	records, err := u.Portals.List(ctx)
	if err != nil {
		return ListResponse{}, err
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Name != records[j].Name {
			return records[i].Name < records[j].Name
		}
		return records[i].ID < records[j].ID
	})
	return ListResponse{Portals: records}, nil
}

func (u UseCase) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidRequest
	}
	return u.Portals.Delete(ctx, id)
}
