package factory

import "testing"

type fakeSink struct{ Buckets int }

type fakeSinkConf struct {
	Buckets int `json:"buckets"`
}

// Test registry registration and instantiation using Decode.
func TestRegistry_Create(t *testing.T) {
	reg := NewRegistry[*fakeSink]()
	if err := reg.Register("fake", func(conf map[string]any) (*fakeSink, error) {
		var c fakeSinkConf
		if err := Decode(conf, &c); err != nil {
			return nil, err
		}
		return &fakeSink{Buckets: c.Buckets}, nil
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	inst, err := reg.Create(ModuleConfig{Type: "fake", Conf: map[string]any{"buckets": 12}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if inst.Buckets != 12 {
		t.Fatalf("expected 12 got %d", inst.Buckets)
	}
}

// Test duplicate registration and unknown type errors.
func TestRegistry_Errors(t *testing.T) {
	reg := NewRegistry[int]()
	if err := reg.Register("x", func(map[string]any) (int, error) { return 1, nil }); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register("x", nil); err == nil {
		t.Fatal("expected nil factory error")
	}
	if err := reg.Register("x", func(map[string]any) (int, error) { return 2, nil }); err == nil {
		t.Fatal("expected duplicate error")
	}
	if _, err := reg.Create(ModuleConfig{Type: "missing"}); err == nil {
		t.Fatal("expected unknown type error")
	}
}
