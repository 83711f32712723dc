package settings

import "context"

// Repository stores the single office-hours row.
type Repository interface {
	// Get returns the current policy, or ErrSettingsNotFound when the
	// seed row is missing.
	Get(ctx context.Context) (OfficeHours, error)

	// Update replaces the stored policy.
	Update(ctx context.Context, hours OfficeHours) error
}
