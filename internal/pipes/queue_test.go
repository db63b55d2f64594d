package pipes

import "testing"

func TestNewQueueValidation(t *testing.T) {
	kinds := RandomizableKinds()

	if _, err := NewQueue(0, kinds, NewRand(1)); err == nil {
		t.Error("expected error for zero size")
	}
	if _, err := NewQueue(-2, kinds, NewRand(1)); err == nil {
		t.Error("expected error for negative size")
	}
	if _, err := NewQueue(3, nil, NewRand(1)); err == nil {
		t.Error("expected error for empty kind list")
	}
	if _, err := NewQueue(3, kinds, NewRand(1)); err != nil {
		t.Errorf("valid construction failed: %v", err)
	}
}

func TestQueueConstantSize(t *testing.T) {
	q, err := NewQueue(5, RandomizableKinds(), NewRand(3))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 50; i++ {
		if q.Len() != 5 {
			t.Fatalf("queue size drifted to %d after %d advances", q.Len(), i)
		}
		front := q.Peek()
		if got := q.Advance(); got != front {
			t.Errorf("Advance returned %+v, Peek promised %+v", got, front)
		}
	}
}

func TestQueueDeterminism(t *testing.T) {
	q1, _ := NewQueue(4, RandomizableKinds(), NewRand(77))
	q2, _ := NewQueue(4, RandomizableKinds(), NewRand(77))
	for i := 0; i < 40; i++ {
		if a, b := q1.Advance(), q2.Advance(); a != b {
			t.Fatalf("draw %d differs: %+v vs %+v", i, a, b)
		}
	}
}

func TestQueueDrawsOnlyAllowedKinds(t *testing.T) {
	allowed := []KindID{Straight}
	q, _ := NewQueue(3, allowed, NewRand(9))
	for i := 0; i < 30; i++ {
		item := q.Advance()
		if item.Kind != Straight {
			t.Errorf("drew disallowed kind %v", item.Kind)
		}
		if item.Rotation > 3 {
			t.Errorf("rotation out of range: %d", item.Rotation)
		}
	}
}

func TestQueuePeekDoesNotMutate(t *testing.T) {
	q, _ := NewQueue(2, RandomizableKinds(), NewRand(5))
	a := q.Peek()
	b := q.Peek()
	if a != b {
		t.Errorf("Peek mutated the queue: %+v vs %+v", a, b)
	}
}
