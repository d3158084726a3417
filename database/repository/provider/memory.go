// Package provider implements the catalog-backed provider repository.
//
// Providers are seeded from the static catalog at startup and held in
// memory. When a redis client is supplied, provider mutations are mirrored
// there as JSON snapshots and reloaded on the next start; the snapshot is a
// cache, never the source of truth, and every redis failure degrades to a
// log line.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"nexus/database/repository"
	"nexus/models"
	"nexus/utils"
)

const snapshotKeyPrefix = "provider:"

// MemoryProviderRepo is an in-memory ProviderRepository with an optional
// redis snapshot mirror.
type MemoryProviderRepo struct {
	mu        sync.RWMutex
	providers map[string]models.Provider
	order     []string // seed order, kept for stable listings
	snap      *redis.Client
}

// NewMemoryProviderRepo seeds the repository and overlays any snapshots left
// by a previous run. snap may be nil.
func NewMemoryProviderRepo(seed []models.Provider, snap *redis.Client) *MemoryProviderRepo {
	r := &MemoryProviderRepo{
		providers: make(map[string]models.Provider, len(seed)),
		snap:      snap,
	}
	for _, p := range seed {
		r.providers[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	r.loadSnapshots()
	return r
}

func (r *MemoryProviderRepo) loadSnapshots() {
	if r.snap == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	for id := range r.providers {
		data, err := r.snap.Get(ctx, snapshotKeyPrefix+id).Result()
		if err != nil {
			continue // no snapshot for this provider
		}
		var p models.Provider
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			utils.GetLogger().Warn("Discarding corrupt provider snapshot", zap.String("id", id), zap.Error(err))
			continue
		}
		r.providers[id] = p
	}
}

func (r *MemoryProviderRepo) snapshot(p models.Provider) {
	if r.snap == nil {
		return
	}
	data, err := json.Marshal(p)
	if err != nil {
		utils.GetLogger().Warn("Failed to marshal provider snapshot", zap.String("id", p.ID), zap.Error(err))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := r.snap.Set(ctx, snapshotKeyPrefix+p.ID, data, 0).Err(); err != nil {
		utils.GetLogger().Warn("Failed to write provider snapshot", zap.String("id", p.ID), zap.Error(err))
	}
}

func (r *MemoryProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[id]
	if !ok {
		return nil, fmt.Errorf("provider %s not found", id)
	}
	return &p, nil
}

// Search returns published providers matching every set criterion, in seed
// order. An empty result is a valid empty slice, not an error.
func (r *MemoryProviderRepo) Search(ctx context.Context, criteria repository.ProviderSearchCriteria) ([]models.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := []models.Provider{}
	for _, id := range r.order {
		p := r.providers[id]
		if !p.Published {
			continue
		}
		if criteria.Category != "" && p.Category != criteria.Category {
			continue
		}
		if criteria.City != "" && p.City != criteria.City {
			continue
		}
		if criteria.Mode != "" && !p.OffersMode(criteria.Mode) {
			continue
		}
		results = append(results, p)
	}
	return results, nil
}

// Upsert replaces a provider entry after validating the in-studio invariant:
// a provider offering studio appointments must expose a studio address and
// coordinates.
func (r *MemoryProviderRepo) Upsert(ctx context.Context, p models.Provider) error {
	if p.ID == "" {
		return fmt.Errorf("provider id is required")
	}
	if p.OffersMode(models.ModeInStudio) && (p.StudioAddress == "" || p.LocationGeo == nil) {
		return fmt.Errorf("provider %s offers in-studio mode but has no studio address or coordinates", p.ID)
	}
	for _, s := range p.Services {
		if s.PriceAtHome == nil && s.PriceInStudio == nil {
			return fmt.Errorf("service %s has no price in any mode", s.Name)
		}
	}
	p.UpdatedAt = time.Now()

	r.mu.Lock()
	if _, exists := r.providers[p.ID]; !exists {
		r.order = append(r.order, p.ID)
	}
	r.providers[p.ID] = p
	r.mu.Unlock()

	r.snapshot(p)
	return nil
}

// SetSlotBlocked marks or clears the blocked slot starting at the given
// minute. Blocking an already blocked slot is a no-op.
func (r *MemoryProviderRepo) SetSlotBlocked(ctx context.Context, providerID string, at time.Time, blocked bool) error {
	at = at.Truncate(time.Minute)

	r.mu.Lock()
	p, ok := r.providers[providerID]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("provider %s not found", providerID)
	}

	slots := p.BlockedSlots[:0:0]
	for _, b := range p.BlockedSlots {
		if !b.Truncate(time.Minute).Equal(at) {
			slots = append(slots, b)
		}
	}
	if blocked {
		slots = append(slots, at)
		sort.Slice(slots, func(i, j int) bool { return slots[i].Before(slots[j]) })
	}
	p.BlockedSlots = slots
	p.UpdatedAt = time.Now()
	r.providers[providerID] = p
	r.mu.Unlock()

	r.snapshot(p)
	return nil
}

var _ repository.ProviderRepository = (*MemoryProviderRepo)(nil)
