package settings

import (
	"os"
	"path/filepath"
	"testing"
)

type testRecord struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestGetMissingKeyKeepsDefaults(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "settings.yml"))
	if err != nil {
		t.Fatal(err)
	}

	record := testRecord{Name: "default", Count: 7}
	found, err := store.Get("nope", &record)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("Get reported a record that was never stored")
	}
	if record.Name != "default" || record.Count != 7 {
		t.Errorf("defaults were clobbered: %+v", record)
	}
}

func TestPutForceSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yml")

	store, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Put("alpha", testRecord{Name: "a", Count: 1}); err != nil {
		t.Fatal(err)
	}
	if err := store.Put("beta", testRecord{Name: "b", Count: 2}); err != nil {
		t.Fatal(err)
	}
	if err := store.ForceSave(); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	var alpha, beta testRecord
	if found, err := reopened.Get("alpha", &alpha); err != nil || !found {
		t.Fatalf("alpha: found=%t err=%v", found, err)
	}
	if found, err := reopened.Get("beta", &beta); err != nil || !found {
		t.Fatalf("beta: found=%t err=%v", found, err)
	}
	if alpha.Name != "a" || alpha.Count != 1 || beta.Name != "b" || beta.Count != 2 {
		t.Errorf("round trip lost data: alpha=%+v beta=%+v", alpha, beta)
	}
}

func TestPutOverwritesRecord(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "settings.yml"))
	if err != nil {
		t.Fatal(err)
	}

	if err := store.Put("key", testRecord{Name: "old"}); err != nil {
		t.Fatal(err)
	}
	if err := store.Put("key", testRecord{Name: "new", Count: 3}); err != nil {
		t.Fatal(err)
	}

	var record testRecord
	if _, err := store.Get("key", &record); err != nil {
		t.Fatal(err)
	}
	if record.Name != "new" || record.Count != 3 {
		t.Errorf("overwrite failed: %+v", record)
	}
}

func TestOpenMissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yml")
	store, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Open created the file eagerly")
	}
	if store.Path() != path {
		t.Errorf("Path() = %q, want %q", store.Path(), path)
	}
}
