package lanes

import "testing"

func TestGetLane(t *testing.T) {
	v := Iota[int32]()

	for i := 0; i < v.NumLanes(); i++ {
		if got := GetLane(v, i); got != int32(i) {
			t.Errorf("GetLane(%d): got %v, want %v", i, got, i)
		}
	}
}

func TestGetLaneOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("GetLane with out-of-range index did not panic")
		}
	}()
	v := Iota[int32]()
	GetLane(v, v.NumLanes())
}

func TestInsertLane(t *testing.T) {
	v := Zero[float32]()
	result := InsertLane(v, 0, 5.5)

	if GetLane(result, 0) != 5.5 {
		t.Errorf("InsertLane: lane 0: got %v, want 5.5", GetLane(result, 0))
	}
	for i := 1; i < result.NumLanes(); i++ {
		if GetLane(result, i) != 0 {
			t.Errorf("InsertLane: lane %d modified: got %v", i, GetLane(result, i))
		}
	}
	// Source vector is unchanged.
	if GetLane(v, 0) != 0 {
		t.Error("InsertLane mutated its input")
	}
}

func TestInsertLaneNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("InsertLane with negative index did not panic")
		}
	}()
	InsertLane(Zero[float32](), -1, 1)
}

func TestBroadcast(t *testing.T) {
	v := Iota[int32]()
	lane := v.NumLanes() - 1
	result := Broadcast(v, lane)

	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != int32(lane) {
			t.Errorf("Broadcast: lane %d: got %v, want %v", i, result.data[i], lane)
		}
	}
}

func TestBroadcastOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Broadcast with out-of-range index did not panic")
		}
	}()
	v := Iota[int32]()
	Broadcast(v, v.NumLanes())
}

func TestReverse(t *testing.T) {
	v := Iota[int32]()
	result := Reverse(v)

	n := result.NumLanes()
	for i := 0; i < n; i++ {
		if result.data[i] != int32(n-1-i) {
			t.Errorf("Reverse: lane %d: got %v, want %v", i, result.data[i], n-1-i)
		}
	}
}

func TestReverseTwiceIsIdentity(t *testing.T) {
	v := Iota[float64]()
	result := Reverse(Reverse(v))

	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != v.data[i] {
			t.Errorf("Reverse twice: lane %d: got %v, want %v", i, result.data[i], v.data[i])
		}
	}
}

func TestInterleave(t *testing.T) {
	n := MaxLanes[int32]()
	if n < 2 {
		t.Skip("vector too narrow to interleave")
	}

	a := Iota[int32]()              // 0, 1, 2, ...
	b := Add(a, Set[int32](100))    // 100, 101, 102, ...
	lower := InterleaveLower(a, b)  // 0, 100, 1, 101, ...
	upper := InterleaveUpper(a, b)  // n/2, 100+n/2, ...

	for i := 0; i < n/2; i++ {
		if got := lower.data[2*i]; got != int32(i) {
			t.Errorf("InterleaveLower: lane %d: got %v, want %v", 2*i, got, i)
		}
		if got := lower.data[2*i+1]; got != int32(100+i) {
			t.Errorf("InterleaveLower: lane %d: got %v, want %v", 2*i+1, got, 100+i)
		}
		if got := upper.data[2*i]; got != int32(n/2+i) {
			t.Errorf("InterleaveUpper: lane %d: got %v, want %v", 2*i, got, n/2+i)
		}
		if got := upper.data[2*i+1]; got != int32(100+n/2+i) {
			t.Errorf("InterleaveUpper: lane %d: got %v, want %v", 2*i+1, got, 100+n/2+i)
		}
	}
}
