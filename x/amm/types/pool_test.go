package types

import (
	"testing"

	"cosmossdk.io/math"
)

func validPool() PoolState {
	return PoolState{
		PoolId:         1,
		LpDenom:        "lp/pool/1",
		AdaReserve:     math.NewInt(1000),
		TokenReserve:   math.NewInt(2000),
		TotalLpSupply:  math.NewInt(1414),
		FeeBps:         30,
		ProtocolFeeBps: 5,
	}
}

func TestPoolState_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PoolState)
		wantErr bool
	}{
		{"valid", func(p *PoolState) {}, false},
		{"uninitialized", func(p *PoolState) {
			p.AdaReserve = math.ZeroInt()
			p.TokenReserve = math.ZeroInt()
			p.TotalLpSupply = math.ZeroInt()
		}, false},
		{"empty lp denom", func(p *PoolState) { p.LpDenom = "" }, true},
		{"nil reserve", func(p *PoolState) { p.AdaReserve = math.Int{} }, true},
		{"negative reserve", func(p *PoolState) { p.TokenReserve = math.NewInt(-1) }, true},
		{"negative supply", func(p *PoolState) { p.TotalLpSupply = math.NewInt(-1) }, true},
		{"fee too high", func(p *PoolState) { p.FeeBps = 10001 }, true},
		{"protocol fee too high", func(p *PoolState) { p.ProtocolFeeBps = MaxProtocolFeeBps + 1 }, true},
		{"protocol fee without swap fee", func(p *PoolState) {
			p.FeeBps = 0
			p.ProtocolFeeBps = 5
		}, false},
		{"supply without reserves", func(p *PoolState) {
			p.AdaReserve = math.ZeroInt()
		}, true},
		{"reserves without supply", func(p *PoolState) {
			p.TotalLpSupply = math.ZeroInt()
		}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pool := validPool()
			tc.mutate(&pool)

			err := pool.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestPoolState_Equal(t *testing.T) {
	a := validPool()
	b := validPool()

	if !a.Equal(b) {
		t.Fatal("identical pools must compare equal")
	}

	b.TokenReserve = math.NewInt(2001)
	if a.Equal(b) {
		t.Fatal("pools with different reserves must not compare equal")
	}

	b = validPool()
	b.Paused = true
	if a.Equal(b) {
		t.Fatal("pools with different paused flags must not compare equal")
	}
}

func TestNewPoolState(t *testing.T) {
	pool := NewPoolState(7, "lp/pool/7", 30, 5)

	if pool.IsInitialized() {
		t.Fatal("new pool must not be initialized")
	}
	if err := pool.Validate(); err != nil {
		t.Fatalf("new pool must validate: %v", err)
	}
}
