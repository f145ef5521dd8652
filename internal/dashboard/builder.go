// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/rentalytics/internal/database"
	"github.com/tomtom215/rentalytics/internal/logging"
	"github.com/tomtom215/rentalytics/internal/metrics"
	"github.com/tomtom215/rentalytics/internal/models"
)

// ErrUnknownTab is returned by Build for a tab id that does not exist.
var ErrUnknownTab = errors.New("unknown tab")

// Store is the dataset store the builder reads from. *database.DB implements it.
type Store interface {
	Loaded() bool
	HasColumns(ds database.Dataset, cols ...string) bool
	RowCount(ds database.Dataset) int64
	Preview(ctx context.Context, ds database.Dataset, limit int) (*models.Table, error)

	Aggregate(ctx context.Context, ds database.Dataset, fn database.AggFunc, col string) (float64, bool, error)
	ValueCounts(ctx context.Context, ds database.Dataset, col string, order database.CountOrder) ([]database.LabelValue, error)
	CrossCounts(ctx context.Context, ds database.Dataset, rowCol, colCol string) ([]database.Cell, error)
	Max(ctx context.Context, ds database.Dataset, metric string, labels ...string) (*database.Extreme, error)
	TopN(ctx context.Context, ds database.Dataset, label, metric string, n int) ([]database.LabelValue, error)
	TopNByKey(ctx context.Context, ds database.Dataset, key, label, metric string, n int) ([]database.LabelValue, error)
	TopGroups(ctx context.Context, ds database.Dataset, group, metric string, n int) ([]database.LabelValue, error)
	Pivot(ctx context.Context, ds database.Dataset, rowCol, colCol, metric string, fn database.AggFunc) ([]database.Cell, error)
	FirstPerGroup(ctx context.Context, ds database.Dataset, group, metric string) ([]database.LabelValue, error)
	GroupBy(ctx context.Context, ds database.Dataset, group, metric string, fn database.AggFunc, orderCol string) ([]database.LabelValue, error)
	Points(ctx context.Context, ds database.Dataset, label, x, y string) ([]database.Point, error)
	Segment(ctx context.Context, rule database.SegmentRule) (*database.SegmentResult, error)
}

// Options configures a Builder.
type Options struct {
	// PreviewRows is the preview size used when Build gets a negative count.
	PreviewRows int

	// ShareTolerance is how far a store's percentage total may drift from
	// 100 before a warning is logged.
	ShareTolerance float64
}

// DefaultOptions returns the dashboard defaults.
func DefaultOptions() Options {
	return Options{PreviewRows: 5, ShareTolerance: 0.5}
}

// Tab ids.
const (
	TabRentals   = "rentals"
	TabMonthly   = "monthly"
	TabCustomers = "customers"
	TabFilms     = "films"
	TabRevenue   = "revenue"
)

type tabFunc func(b *Builder, t *tabContext) error

type tabDef struct {
	info  models.TabInfo
	build tabFunc
}

var tabDefs = []tabDef{
	{models.TabInfo{ID: TabRentals, Title: "Rental Detail", Dataset: string(database.Rentals)}, buildRentals},
	{models.TabInfo{ID: TabMonthly, Title: "Rentals by Month and Category", Dataset: string(database.MonthlyCategory)}, buildMonthly},
	{models.TabInfo{ID: TabCustomers, Title: "Most Frequent Customers", Dataset: string(database.TopCustomers)}, buildCustomers},
	{models.TabInfo{ID: TabFilms, Title: "Most Profitable Films", Dataset: string(database.TopFilms)}, buildFilms},
	{models.TabInfo{ID: TabRevenue, Title: "Revenue by Store and Category", Dataset: string(database.StoreRevenue)}, buildRevenue},
}

// Tabs returns the tab index in display order.
func Tabs() []models.TabInfo {
	out := make([]models.TabInfo, len(tabDefs))
	for i, d := range tabDefs {
		out[i] = d.info
	}
	return out
}

// Builder computes tab reports from a Store. Every Build call queries the
// store again; only the loaded tables are shared.
type Builder struct {
	store Store
	opts  Options
}

// NewBuilder creates a Builder over store.
func NewBuilder(store Store, opts Options) *Builder {
	if opts.ShareTolerance <= 0 {
		opts.ShareTolerance = DefaultOptions().ShareTolerance
	}
	if opts.PreviewRows < 0 {
		opts.PreviewRows = DefaultOptions().PreviewRows
	}
	return &Builder{store: store, opts: opts}
}

// Build computes one tab. A negative previewRows uses the configured default.
func (b *Builder) Build(ctx context.Context, tabID string, previewRows int) (*models.TabReport, error) {
	var def *tabDef
	for i := range tabDefs {
		if tabDefs[i].info.ID == tabID {
			def = &tabDefs[i]
			break
		}
	}
	if def == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTab, tabID)
	}
	if !b.store.Loaded() {
		return nil, database.ErrNotLoaded
	}
	if previewRows < 0 {
		previewRows = b.opts.PreviewRows
	}

	start := time.Now()
	ds := database.Dataset(def.info.Dataset)

	preview, err := b.store.Preview(ctx, ds, previewRows)
	if err != nil {
		return nil, fmt.Errorf("preview %s: %w", tabID, err)
	}

	t := &tabContext{
		ctx:   ctx,
		store: b.store,
		ds:    ds,
		report: &models.TabReport{
			TabInfo: def.info,
			Preview: preview,
			KPIs:    []models.KPICard{},
			Charts:  []models.Chart{},
		},
	}
	if err := def.build(b, t); err != nil {
		return nil, fmt.Errorf("build %s: %w", tabID, err)
	}

	metrics.RecordTabRender(tabID, time.Since(start))
	return t.report, nil
}

// tabContext carries one Build call through the tab functions.
type tabContext struct {
	ctx    context.Context
	store  Store
	ds     database.Dataset
	report *models.TabReport
}

// needs reports whether the tab dataset has every column of a block. A
// missing column records the block as skipped.
func (t *tabContext) needs(block string, cols ...string) bool {
	if t.store.HasColumns(t.ds, cols...) {
		return true
	}
	t.report.Skipped = append(t.report.Skipped, block)
	metrics.RecordBlockSkipped(t.report.ID, block)
	logging.Ctx(t.ctx).Debug().
		Str("tab", t.report.ID).
		Str("block", block).
		Strs("columns", cols).
		Msg("Skipping block with missing columns")
	return false
}

func (t *tabContext) addKPI(card models.KPICard) {
	t.report.KPIs = append(t.report.KPIs, card)
}

func (t *tabContext) addChart(chart models.Chart) {
	t.report.Charts = append(t.report.Charts, chart)
}
