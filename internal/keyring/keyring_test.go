package keyring

import (
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestSetAndGet(t *testing.T) {
	gokeyring.MockInit()

	connStr := "postgres://weeklit@localhost:5432/weeklit?sslmode=disable"
	if err := Default.Set(connStr); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	got, err := Default.Get()
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got != connStr {
		t.Errorf("Get() = %q, want %q", got, connStr)
	}
}

func TestSetEmpty(t *testing.T) {
	gokeyring.MockInit()

	if err := Default.Set("   "); err == nil {
		t.Error("Set with blank secret should return an error")
	}
}

func TestEntriesAreIndependent(t *testing.T) {
	gokeyring.MockInit()

	other := Entry{Service: "weeklit", User: "other"}
	if err := Default.Set("postgres://a@localhost/a"); err != nil {
		t.Fatal(err)
	}
	if _, err := other.Get(); !errors.Is(err, ErrNotFound) {
		t.Errorf("other.Get() error = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	gokeyring.MockInit()

	if err := Default.Set("postgres://a@localhost/a"); err != nil {
		t.Fatal(err)
	}
	if err := Default.Delete(); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := Default.Get(); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
	if err := Default.Delete(); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestUnavailableKeyring(t *testing.T) {
	gokeyring.MockInitWithError(errors.New("no dbus"))
	t.Cleanup(gokeyring.MockInit)

	if _, err := Default.Get(); !errors.Is(err, ErrKeyringUnavailable) {
		t.Errorf("Get() error = %v, want ErrKeyringUnavailable", err)
	}
	if IsAvailable() {
		t.Error("IsAvailable() should be false when the keyring errors")
	}
}
