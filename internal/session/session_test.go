package session

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"pgregory.net/rapid"

	"github.com/vovakirdan/reelsim/internal/slot"
)

// countingSource always draws index 0 and counts the draws.
type countingSource struct {
	calls int
}

func (c *countingSource) IntN(n int) int {
	c.calls++
	return 0
}

// memorySaver keeps every record in memory.
type memorySaver struct {
	records []RoundRecord
}

func (m *memorySaver) SaveRound(rec RoundRecord) error {
	m.records = append(m.records, rec)
	return nil
}

func newTestSession(t *testing.T, deposit int, opts Options) *Session {
	t.Helper()
	s, err := New(slot.DefaultMachine(), deposit, opts)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return s
}

func TestNewRejectsDeposit(t *testing.T) {
	for _, deposit := range []int{0, -1, -100} {
		_, err := New(slot.DefaultMachine(), deposit, Options{})
		if !errors.Is(err, ErrInvalidDeposit) {
			t.Errorf("New(deposit=%d) error = %v, want ErrInvalidDeposit", deposit, err)
		}
	}
}

func TestNewRejectsMachineBeforeDeposit(t *testing.T) {
	m := slot.DefaultMachine()
	m.Rows = 25 // pool holds 20 symbols

	_, err := New(m, 0, Options{})
	if !errors.Is(err, slot.ErrConfig) {
		t.Fatalf("New() error = %v, want slot.ErrConfig", err)
	}
}

func TestPlayRoundKnownGrid(t *testing.T) {
	// Index 0 every time drains A, A, B from each reel:
	// rows are AAA, AAA, BBB.
	saver := &memorySaver{}
	clock := clockwork.NewFakeClockAt(time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC))
	s := newTestSession(t, 100, Options{Source: &countingSource{}, Saver: saver, Clock: clock})

	out, err := s.PlayRound(3, 2)
	if err != nil {
		t.Fatalf("PlayRound() failed: %v", err)
	}

	wantWin := 5*2 + 5*2 + 4*2
	if out.Winnings != wantWin {
		t.Errorf("Winnings = %d, want %d", out.Winnings, wantWin)
	}
	if !slices.Equal(out.WinningLines, []int{1, 2, 3}) {
		t.Errorf("WinningLines = %v, want [1 2 3]", out.WinningLines)
	}
	if out.TotalBet != 6 || out.Net != wantWin-6 {
		t.Errorf("TotalBet = %d, Net = %d", out.TotalBet, out.Net)
	}
	if s.Balance() != 100+wantWin-6 || out.Balance != s.Balance() {
		t.Errorf("Balance = %d (outcome %d), want %d", s.Balance(), out.Balance, 100+wantWin-6)
	}

	if len(saver.records) != 1 {
		t.Fatalf("saved %d records, want 1", len(saver.records))
	}
	rec := saver.records[0]
	want := RoundRecord{
		RunID:     1,
		Bet:       2,
		Lines:     3,
		TotalBet:  6,
		Winnings:  wantWin,
		Outcome:   wantWin - 6,
		Timestamp: clock.Now(),
	}
	if rec != want {
		t.Errorf("record = %+v, want %+v", rec, want)
	}
}

// overshootSource returns n, one past the valid range.
type overshootSource struct{}

func (overshootSource) IntN(n int) int { return n }

func TestPlayRoundInvariantLeavesBalance(t *testing.T) {
	saver := &memorySaver{}
	s := newTestSession(t, 100, Options{Source: overshootSource{}, Saver: saver})

	_, err := s.PlayRound(1, 1)
	if !errors.Is(err, slot.ErrInvariant) {
		t.Fatalf("PlayRound() = %v, want slot.ErrInvariant", err)
	}
	if IsValidation(err) || errors.Is(err, ErrPersist) {
		t.Errorf("invariant error classified as %v", err)
	}
	if s.Balance() != 100 || s.Rounds() != 0 || len(saver.records) != 0 {
		t.Errorf("state changed: balance=%d rounds=%d saved=%d", s.Balance(), s.Rounds(), len(saver.records))
	}
}

func TestPlayRoundRejectsBetAboveMax(t *testing.T) {
	src := &countingSource{}
	saver := &memorySaver{}
	s := newTestSession(t, 1000, Options{Source: src, Saver: saver})

	_, err := s.PlayRound(1, 150)
	if !errors.Is(err, ErrInvalidBet) {
		t.Fatalf("PlayRound() error = %v, want ErrInvalidBet", err)
	}
	if s.Balance() != 1000 {
		t.Errorf("Balance = %d, want 1000", s.Balance())
	}
	if src.calls != 0 {
		t.Errorf("sampler drew %d times, want 0", src.calls)
	}
	if len(saver.records) != 0 {
		t.Errorf("saved %d records, want 0", len(saver.records))
	}
}

func TestPlayRoundInsufficientFunds(t *testing.T) {
	src := &countingSource{}
	saver := &memorySaver{}
	s := newTestSession(t, 10, Options{Source: src, Saver: saver})

	_, err := s.PlayRound(3, 5)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("PlayRound() error = %v, want ErrInsufficientFunds", err)
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error is %T, want *ValidationError", err)
	}
	if ve.Kind != InsufficientFunds || ve.Value != 15 || ve.Max != 10 {
		t.Errorf("ValidationError = %+v", ve)
	}
	if s.Balance() != 10 || src.calls != 0 || len(saver.records) != 0 {
		t.Errorf("state changed: balance=%d draws=%d records=%d", s.Balance(), src.calls, len(saver.records))
	}
	if s.Rounds() != 0 {
		t.Errorf("Rounds = %d, want 0", s.Rounds())
	}
}

func TestValidateLines(t *testing.T) {
	s := newTestSession(t, 100, Options{})

	tests := []struct {
		lines int
		ok    bool
	}{
		{0, false},
		{1, true},
		{3, true},
		{4, false},
		{-2, false},
	}

	for _, tc := range tests {
		err := s.ValidateLines(tc.lines)
		if tc.ok && err != nil {
			t.Errorf("ValidateLines(%d) = %v, want nil", tc.lines, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidLines) {
			t.Errorf("ValidateLines(%d) = %v, want ErrInvalidLines", tc.lines, err)
		}
	}
}

func TestValidateLinesCappedByMaxLines(t *testing.T) {
	m := slot.DefaultMachine()
	m.MaxLines = 2
	s, err := New(m, 100, Options{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if err := s.ValidateLines(3); !errors.Is(err, ErrInvalidLines) {
		t.Errorf("ValidateLines(3) = %v, want ErrInvalidLines", err)
	}
}

func TestValidateBetBounds(t *testing.T) {
	s := newTestSession(t, 100, Options{})

	for _, bet := range []int{1, 50, 100} {
		if err := s.ValidateBet(bet); err != nil {
			t.Errorf("ValidateBet(%d) = %v", bet, err)
		}
	}
	for _, bet := range []int{0, -1, 101, 150} {
		if err := s.ValidateBet(bet); !errors.Is(err, ErrInvalidBet) {
			t.Errorf("ValidateBet(%d) = %v, want ErrInvalidBet", bet, err)
		}
	}
}

func TestPersistFailureKeepsSettlement(t *testing.T) {
	boom := errors.New("disk full")
	saver := RoundSaverFunc(func(RoundRecord) error { return boom })
	s := newTestSession(t, 50, Options{Source: slot.NewSource(3), Saver: saver})

	out, err := s.PlayRound(2, 5)
	if !errors.Is(err, ErrPersist) || !errors.Is(err, boom) {
		t.Fatalf("PlayRound() error = %v, want ErrPersist wrapping cause", err)
	}
	if out.RunID != 1 {
		t.Errorf("RunID = %d, want 1", out.RunID)
	}
	if s.Balance() != 50+out.Net || out.Balance != s.Balance() {
		t.Errorf("Balance = %d, want %d", s.Balance(), 50+out.Net)
	}
	if IsValidation(err) {
		t.Error("persistence failure reported as validation error")
	}
}

func TestSessionsWithSameSeedAgree(t *testing.T) {
	a := newTestSession(t, 500, Options{Source: slot.NewSource(99)})
	b := newTestSession(t, 500, Options{Source: slot.NewSource(99)})

	for i := range 25 {
		oa, errA := a.PlayRound(3, 1)
		ob, errB := b.PlayRound(3, 1)
		if errA != nil || errB != nil {
			t.Fatalf("round %d: %v / %v", i, errA, errB)
		}
		if oa.Grid.String() != ob.Grid.String() || oa.Net != ob.Net {
			t.Fatalf("round %d diverged", i)
		}
	}
}

func TestBalanceConservation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		deposit := rapid.IntRange(1, 2000).Draw(t, "deposit")
		seed := rapid.Int64().Draw(t, "seed")
		s, err := New(slot.DefaultMachine(), deposit, Options{Source: slot.NewSource(seed)})
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}

		sum := 0
		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for range steps {
			lines := rapid.IntRange(0, 4).Draw(t, "lines")
			bet := rapid.IntRange(0, 120).Draw(t, "bet")
			before := s.Balance()

			out, err := s.PlayRound(lines, bet)
			if err != nil {
				if !IsValidation(err) {
					t.Fatalf("unexpected error: %v", err)
				}
				if s.Balance() != before {
					t.Fatalf("rejected round changed balance %d -> %d", before, s.Balance())
				}
				continue
			}
			sum += out.Net
			if s.Balance() < 0 {
				t.Fatalf("balance went negative: %d", s.Balance())
			}
		}

		if s.Balance() != deposit+sum {
			t.Fatalf("balance = %d, want deposit %d + net %d", s.Balance(), deposit, sum)
		}
	})
}

func TestExhausted(t *testing.T) {
	s := newTestSession(t, 1, Options{Source: slot.NewSource(1)})
	if s.Exhausted() {
		t.Fatal("fresh session with 1 reported exhausted")
	}

	// Keep betting the minimum until the balance runs out or we give up.
	for range 200 {
		if s.Exhausted() {
			break
		}
		if _, err := s.PlayRound(1, 1); err != nil {
			t.Fatalf("PlayRound() failed: %v", err)
		}
	}
	if s.Balance() == 0 && !s.Exhausted() {
		t.Error("zero balance not reported as exhausted")
	}
}
