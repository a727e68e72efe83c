package secrets

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func testAdapter() *Adapter {
	return New("credstore-test", NewMemoryProvider())
}

func TestSaveAndGet(t *testing.T) {
	a := testAdapter()

	if err := a.Save("s3cret", "api-token"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	val, ok, err := a.Get("api-token")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("Expected entry to exist")
	}
	if val != "s3cret" {
		t.Errorf("Expected s3cret, got %s", val)
	}
}

func TestSaveOverwrites(t *testing.T) {
	a := testAdapter()

	if err := a.Save("first", "token"); err != nil {
		t.Fatalf("First Save failed: %v", err)
	}
	// Re-saving must not raise a duplicate error or leave two entries.
	if err := a.Save("second", "token"); err != nil {
		t.Fatalf("Second Save failed: %v", err)
	}

	val, ok, err := a.Get("token")
	if err != nil || !ok {
		t.Fatalf("Get failed: ok=%v err=%v", ok, err)
	}
	if val != "second" {
		t.Errorf("Expected second, got %s", val)
	}
}

func TestUpdateChangesValue(t *testing.T) {
	a := testAdapter()

	if err := a.Save("v1", "token"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := a.Update("v2", "token"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	val, ok, _ := a.Get("token")
	if !ok || val != "v2" {
		t.Errorf("Expected v2, got %q (ok=%v)", val, ok)
	}
}

func TestUpdateMissingKey(t *testing.T) {
	a := testAdapter()

	err := a.Update("value", "never-saved")
	var perr *ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected ProviderError, got %v", err)
	}
	if perr.Code != StatusItemNotFound {
		t.Errorf("Expected status %d, got %d", StatusItemNotFound, perr.Code)
	}
}

func TestDeleteRemovesEntry(t *testing.T) {
	a := testAdapter()

	if err := a.Save("value", "token"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := a.Delete("token"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	_, ok, err := a.Get("token")
	if err != nil {
		t.Fatalf("Get after delete failed: %v", err)
	}
	if ok {
		t.Error("Expected entry to be gone after delete")
	}
}

func TestDeleteMissingKey(t *testing.T) {
	a := testAdapter()

	err := a.Delete("never-saved")
	var perr *ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected ProviderError, got %v", err)
	}
	if perr.Code != StatusItemNotFound {
		t.Errorf("Expected status %d, got %d", StatusItemNotFound, perr.Code)
	}
}

func TestExists(t *testing.T) {
	a := testAdapter()

	ok, err := a.Exists("token")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if ok {
		t.Error("Expected false before save")
	}

	if err := a.Save("value", "token"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	ok, err = a.Exists("token")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !ok {
		t.Error("Expected true after save")
	}
}

func TestEmptyKeyValidation(t *testing.T) {
	a := testAdapter()

	if err := a.Save("value", ""); !errors.Is(err, ErrKeyEmpty) {
		t.Errorf("Save: expected ErrKeyEmpty, got %v", err)
	}
	if err := a.Update("value", ""); !errors.Is(err, ErrKeyEmpty) {
		t.Errorf("Update: expected ErrKeyEmpty, got %v", err)
	}
	if err := a.Delete(""); !errors.Is(err, ErrKeyEmpty) {
		t.Errorf("Delete: expected ErrKeyEmpty, got %v", err)
	}
	if _, _, err := a.Get(""); !errors.Is(err, ErrKeyEmpty) {
		t.Errorf("Get: expected ErrKeyEmpty, got %v", err)
	}
	if _, err := a.Exists(""); !errors.Is(err, ErrKeyEmpty) {
		t.Errorf("Exists: expected ErrKeyEmpty, got %v", err)
	}
}

func TestEmptyValueValidation(t *testing.T) {
	a := testAdapter()

	if err := a.Save("", "testKey"); !errors.Is(err, ErrValueEmpty) {
		t.Errorf("Save: expected ErrValueEmpty, got %v", err)
	}
	if err := a.Update("", "testKey"); !errors.Is(err, ErrValueEmpty) {
		t.Errorf("Update: expected ErrValueEmpty, got %v", err)
	}
}

func TestGetUndecodablePayload(t *testing.T) {
	p := NewMemoryProvider()
	a := New("credstore-test", p)

	// Raw bytes planted behind the adapter's back, not valid UTF-8.
	if st := p.Insert("credstore-test", "binary", []byte{0xff, 0xfe, 0x00}); !st.OK() {
		t.Fatalf("Insert failed with status %d", st)
	}

	val, ok, err := a.Get("binary")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok || val != "" {
		t.Errorf("Expected undecodable payload to read as absent, got %q (ok=%v)", val, ok)
	}
}

func TestConcurrentRoundTrip(t *testing.T) {
	a := testAdapter()

	const callers = 32
	var wg sync.WaitGroup
	errs := make(chan error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i)
			value := fmt.Sprintf("value-%d", i)
			if err := a.Save(value, key); err != nil {
				errs <- fmt.Errorf("Save %s: %v", key, err)
				return
			}
			got, ok, err := a.Get(key)
			if err != nil || !ok || got != value {
				errs <- fmt.Errorf("Get %s: got %q ok=%v err=%v", key, got, ok, err)
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
