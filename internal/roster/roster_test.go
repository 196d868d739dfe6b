package roster

import (
	"context"
	"errors"
	"testing"

	"timetable/internal/telemetry"

	"go.uber.org/zap"
)

type fakeSource struct {
	groups []string
	err    error
}

func (f *fakeSource) Groups(_ context.Context) ([]string, error) {
	return f.groups, f.err
}

func newTestProvider(source Source) *Provider {
	return NewProvider(zap.NewNop(), &telemetry.Trace{}, source)
}

func TestReloadReplacesSnapshot(t *testing.T) {
	source := &fakeSource{groups: []string{"ИСИП-21", "СИС-22"}}
	provider := newTestProvider(source)

	if err := provider.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	groups := provider.Groups()
	if len(groups) != 2 || groups[0] != "ИСИП-21" || groups[1] != "СИС-22" {
		t.Fatalf("unexpected snapshot: %v", groups)
	}
}

func TestReloadKeepsSnapshotOnError(t *testing.T) {
	source := &fakeSource{groups: []string{"ИСИП-21"}}
	provider := newTestProvider(source)
	if err := provider.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	source.err = errors.New("connection refused")
	if err := provider.Reload(context.Background()); err == nil {
		t.Fatal("expected error from failed reload")
	}
	if groups := provider.Groups(); len(groups) != 1 || groups[0] != "ИСИП-21" {
		t.Fatalf("snapshot should survive a failed reload, got %v", groups)
	}
}

func TestReloadKeepsSnapshotWhenSourceEmpty(t *testing.T) {
	source := &fakeSource{groups: []string{"ИСИП-21"}}
	provider := newTestProvider(source)
	if err := provider.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	source.groups = nil
	if err := provider.Reload(context.Background()); err != nil {
		t.Fatalf("empty source is not an error: %v", err)
	}
	if groups := provider.Groups(); len(groups) != 1 {
		t.Fatalf("snapshot should survive an empty source, got %v", groups)
	}
}

func TestEmptySnapshotBeforeFirstReload(t *testing.T) {
	provider := newTestProvider(&fakeSource{})
	if groups := provider.Groups(); len(groups) != 0 {
		t.Fatalf("expected empty snapshot, got %v", groups)
	}
}
