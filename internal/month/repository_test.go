package month

import (
	"reflect"
	"testing"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository()
	if err != nil {
		t.Fatalf("NewRepository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func names(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}

func TestRepositoryKeepsInsertionOrder(t *testing.T) {
	repo := newTestRepository(t)
	for _, n := range []string{"January", "February", "March"} {
		if err := repo.Append(NewRecord(n, 160, 150)); err != nil {
			t.Fatalf("Append(%s): %v", n, err)
		}
	}

	records, err := repo.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got, want := names(records), []string{"January", "February", "March"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("names = %v, want %v", got, want)
	}
	if n, _ := repo.Len(); n != 3 {
		t.Fatalf("Len = %d, want 3", n)
	}
}

func TestRepositoryRemoveShiftsPositions(t *testing.T) {
	repo := newTestRepository(t)
	for _, n := range []string{"a", "b", "c", "d"} {
		repo.Append(NewRecord(n, 1, 1))
	}

	if err := repo.Remove(1); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	records, _ := repo.List()
	if got, want := names(records), []string{"a", "c", "d"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("names = %v, want %v", got, want)
	}

	// positions stay dense: the old index 2 is now 1
	if err := repo.Set(1, NewRecord("C", 2, 3)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := repo.Append(NewRecord("e", 1, 1)); err != nil {
		t.Fatalf("Append after Remove: %v", err)
	}
	records, _ = repo.List()
	if got, want := names(records), []string{"a", "C", "d", "e"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("names = %v, want %v", got, want)
	}
	if records[1].Diff != 1 {
		t.Fatalf("diff = %v, want 1", records[1].Diff)
	}
}

func TestRepositoryMissingPosition(t *testing.T) {
	repo := newTestRepository(t)
	repo.Append(NewRecord("a", 1, 1))

	if err := repo.Set(3, NewRecord("x", 1, 1)); err == nil {
		t.Fatalf("expected error for Set on missing position")
	}
	if err := repo.Remove(-1); err == nil {
		t.Fatalf("expected error for Remove on missing position")
	}
	if n, _ := repo.Len(); n != 1 {
		t.Fatalf("Len = %d, want 1", n)
	}
}

func TestRepositoryReplaceAll(t *testing.T) {
	repo := newTestRepository(t)
	repo.Append(NewRecord("old", 1, 1))

	replacement := []Record{
		NewRecord("January", 168, 160),
		NewRecord("February", 174, 184),
	}
	if err := repo.ReplaceAll(replacement); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}
	records, _ := repo.List()
	if !reflect.DeepEqual(records, replacement) {
		t.Fatalf("records = %+v, want %+v", records, replacement)
	}

	if err := repo.ReplaceAll(nil); err != nil {
		t.Fatalf("ReplaceAll(nil): %v", err)
	}
	if n, _ := repo.Len(); n != 0 {
		t.Fatalf("Len = %d, want 0", n)
	}
}
