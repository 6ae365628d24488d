package testkit

import "testing"

var ovenTemp = 230

func TestSwap_RestoresAfterSubtest(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Serial(t)
		Swap(t, &ovenTemp, 250)
		if ovenTemp != 250 {
			t.Fatalf("ovenTemp = %d", ovenTemp)
		}
	})
	if ovenTemp != 230 {
		t.Fatalf("not restored: %d", ovenTemp)
	}
}

func TestMustPanic_AndContain(t *testing.T) {
	MustPanic(t, func() { panic("burnt") })
	MustContain(t, "levain-api ready", "ready")
}
