package raw

import "testing"

func TestGetTrimsAndDefaults(t *testing.T) {
	c := New().Prefix("RAWTEST_")
	t.Setenv("RAWTEST_NAME", "  papersync  ")
	if got := c.Get("NAME", "x"); got != "papersync" {
		t.Fatalf("Get = %q, want %q", got, "papersync")
	}
	if got := c.Get("MISSING", "fallback"); got != "fallback" {
		t.Fatalf("Get default = %q, want %q", got, "fallback")
	}
}

func TestGetBool(t *testing.T) {
	c := New().Prefix("RAWTEST_")
	for _, v := range []string{"1", "true", "YES"} {
		t.Setenv("RAWTEST_FLAG", v)
		if !c.GetBool("FLAG", false) {
			t.Fatalf("GetBool(%q) = false, want true", v)
		}
	}
	t.Setenv("RAWTEST_FLAG", "off")
	if c.GetBool("FLAG", true) {
		t.Fatalf("GetBool(off) = true, want false")
	}
	if !c.GetBool("MISSING", true) {
		t.Fatalf("GetBool default not honored")
	}
}

func TestGetInt(t *testing.T) {
	c := New().Prefix("RAWTEST_")
	t.Setenv("RAWTEST_N", " 42 ")
	if got := c.GetInt("N", 7); got != 42 {
		t.Fatalf("GetInt = %d, want 42", got)
	}
	t.Setenv("RAWTEST_N", "4x2")
	if got := c.GetInt("N", 7); got != 7 {
		t.Fatalf("GetInt non-numeric = %d, want default 7", got)
	}
}

func TestNestedPrefix(t *testing.T) {
	c := New().Prefix("A_").Prefix("B_")
	t.Setenv("A_B_KEY", "v")
	if got := c.Get("KEY", ""); got != "v" {
		t.Fatalf("nested prefix Get = %q, want %q", got, "v")
	}
}
