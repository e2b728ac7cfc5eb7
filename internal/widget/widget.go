// Package widget renders the home-screen balance widget from the values
// the app caches in its preference store.
package widget

import (
	"context"

	"go.uber.org/zap"
)

// Preference keys written by the app.
const (
	KeyBalance = "balance"
	KeyUpdated = "updated"
)

const (
	LayoutBalanceWidget = "balance_widget"
	ViewBalance         = "widget_balance"
	ViewUpdated         = "widget_updated"
)

const (
	DefaultBalance = "$0"
	DefaultUpdated = "Sin datos"
	updatedPrefix  = "Actualizado: "
)

// Store is a read-only view of the app's preferences.
type Store interface {
	GetString(ctx context.Context, key string) (value string, found bool, err error)
}

// Manager receives the rendered views of each widget instance.
type Manager interface {
	UpdateWidget(id int, views *RemoteViews)
}

// Snapshot is what one render shows.
type Snapshot struct {
	Balance string
	Updated string
}

// RemoteViews is a layout with the text of its views filled in.
type RemoteViews struct {
	Layout string
	Texts  map[string]string
}

func NewRemoteViews(layout string) *RemoteViews {
	return &RemoteViews{Layout: layout, Texts: make(map[string]string)}
}

func (v *RemoteViews) SetTextViewText(viewID, text string) {
	v.Texts[viewID] = text
}

func (v *RemoteViews) Text(viewID string) string {
	return v.Texts[viewID]
}

type BalanceProvider struct {
	logger *zap.Logger
}

func NewBalanceProvider(logger *zap.Logger) *BalanceProvider {
	return &BalanceProvider{logger: logger}
}

// OnUpdate renders every instance in ids with the same snapshot. It has
// no error path: missing, empty or unreadable values show the defaults.
func (p *BalanceProvider) OnUpdate(ctx context.Context, manager Manager, ids []int, store Store) {
	for _, id := range ids {
		snapshot := p.ReadSnapshot(ctx, store)

		views := NewRemoteViews(LayoutBalanceWidget)
		views.SetTextViewText(ViewBalance, snapshot.Balance)
		views.SetTextViewText(ViewUpdated, updatedPrefix+snapshot.Updated)

		manager.UpdateWidget(id, views)
	}
}

func (p *BalanceProvider) ReadSnapshot(ctx context.Context, store Store) Snapshot {
	return Snapshot{
		Balance: p.getString(ctx, store, KeyBalance, DefaultBalance),
		Updated: p.getString(ctx, store, KeyUpdated, DefaultUpdated),
	}
}

func (p *BalanceProvider) getString(ctx context.Context, store Store, key, fallback string) string {
	if store == nil {
		return fallback
	}
	value, found, err := store.GetString(ctx, key)
	if err != nil {
		p.logger.Warn("Failed to read widget preference", zap.String("key", key), zap.Error(err))
		return fallback
	}
	if !found || value == "" {
		return fallback
	}
	return value
}
