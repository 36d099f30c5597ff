package resource

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"
)

func TestAbsoluteRealTimeAdvances(t *testing.T) {
	g := NewWithT(t)

	a := AbsoluteRealTime()
	time.Sleep(10 * time.Millisecond)
	b := AbsoluteRealTime()

	g.Expect(b).To(BeNumerically(">", a))
	// Sub-millisecond resolution: the elapsed reading should be close to the
	// sleep, not rounded to whole seconds.
	g.Expect(b - a).To(BeNumerically(">=", 0.005))
	g.Expect(b - a).To(BeNumerically("<", 1.0))
}

func TestRealTimeAgainstBaseline(t *testing.T) {
	g := NewWithT(t)

	base := AbsoluteRealTime()
	time.Sleep(5 * time.Millisecond)

	g.Expect(RealTime(base)).To(BeNumerically(">", 0.0))
}

func TestProcessTimeNonNegative(t *testing.T) {
	g := NewWithT(t)

	base := AbsoluteProcessTime()
	// Burn a little CPU so the reading has a chance to move on platforms with
	// a real CPU clock.
	x := 0
	for i := 0; i < 1_000_000; i++ {
		x += i
	}
	_ = x

	g.Expect(AbsoluteProcessTime()).To(BeNumerically(">=", base))
	g.Expect(ProcessTime(base)).To(BeNumerically(">=", 0.0))
}

func TestResidentSetSizeSane(t *testing.T) {
	g := NewWithT(t)

	cur := CurrentResidentSetSize()
	max := MaxResidentSetSize()

	// Zero means "unavailable"; a non-zero reading should at least be a
	// plausible byte count for a test process.
	if cur != 0 {
		g.Expect(cur).To(BeNumerically("<", uint64(1)<<40))
	}
	if max != 0 {
		g.Expect(max).To(BeNumerically("<", uint64(1)<<40))
	}
	if cur != 0 && max != 0 {
		g.Expect(max).To(BeNumerically(">=", cur))
	}
}
