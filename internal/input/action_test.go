package input

import "testing"

func TestActionNamespace(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"tag.next", "tag"},
		{"tag.selectInner", "tag"},
		{"quit", "quit"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewAction(tt.name).Namespace(); got != tt.want {
				t.Errorf("Namespace() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewActionDefaults(t *testing.T) {
	a := NewAction("tag.next")
	if a.Count != 1 {
		t.Errorf("Count = %d, want 1", a.Count)
	}
}

func TestWithArgDoesNotMutate(t *testing.T) {
	a := NewAction("tag.next").WithArg("open", "[")
	b := a.WithArg("close", "]")

	if a.Args.GetString("close") != "" {
		t.Error("WithArg mutated the original action")
	}
	if b.Args.GetString("open") != "[" || b.Args.GetString("close") != "]" {
		t.Error("WithArg lost arguments on copy")
	}
}

func TestArgsTypedGetters(t *testing.T) {
	a := NewAction("tag.next").
		WithArg("s", "text").
		WithArg("n", 3).
		WithArg("f", float64(7)).
		WithArg("b", true)

	if got := a.Args.GetString("s"); got != "text" {
		t.Errorf("GetString = %q", got)
	}
	if got := a.Args.GetInt("n"); got != 3 {
		t.Errorf("GetInt = %d", got)
	}
	if got := a.Args.GetInt("f"); got != 7 {
		t.Errorf("GetInt(float64) = %d", got)
	}
	if !a.Args.GetBool("b") {
		t.Error("GetBool = false")
	}
	if got := a.Args.GetString("missing"); got != "" {
		t.Errorf("GetString(missing) = %q", got)
	}
}
