package app

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/dkeye/Chat/internal/domain"
)

func usernames(ms []domain.Member) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Username
	}
	return out
}

func TestRegistryAddNormalizes(t *testing.T) {
	r := NewRegistry()
	m, err := r.Add("c1", " Alice ", " Room1 ")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if m.Username != "alice" || m.Room != "room1" {
		t.Errorf("stored %+v, want alice/room1", m)
	}
	got, ok := r.Get("c1")
	if !ok || got != m {
		t.Errorf("Get = %+v, %v", got, ok)
	}
}

func TestRegistryAddValidation(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Add("c1", "", "room1"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if _, ok := r.Get("c1"); ok {
		t.Error("member created despite validation error")
	}
	if n := len(r.ListByRoom("room1")); n != 0 {
		t.Errorf("room has %d members, want 0", n)
	}
}

func TestRegistryDuplicateName(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Add("c1", "u1", "r1"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := r.Add("c2", " U1", "R1 "); !errors.Is(err, domain.ErrDuplicateName) {
		t.Fatalf("err = %v, want ErrDuplicateName", err)
	}
	if got := r.ListByRoom("r1"); len(got) != 1 || got[0].ID != "c1" {
		t.Errorf("ListByRoom = %+v", got)
	}
	// The same name in another room is fine.
	if _, err := r.Add("c3", "u1", "r2"); err != nil {
		t.Errorf("Add in other room: %v", err)
	}
}

func TestRegistryRejectsBoundConnection(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Add("c1", "alice", "r1"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := r.Add("c1", "bob", "r2"); !errors.Is(err, domain.ErrAlreadyJoined) {
		t.Fatalf("err = %v, want ErrAlreadyJoined", err)
	}
	if n := len(r.ListByRoom("r2")); n != 0 {
		t.Errorf("r2 has %d members", n)
	}
}

func TestRegistryRemove(t *testing.T) {
	r := NewRegistry()
	_, _ = r.Add("c1", "alice", "lobby")
	_, _ = r.Add("c2", "bob", "lobby")

	m, ok := r.Remove("c1")
	if !ok || m.Username != "alice" {
		t.Fatalf("Remove = %+v, %v", m, ok)
	}
	if _, ok := r.Remove("c1"); ok {
		t.Error("second Remove reported a member")
	}
	if _, ok := r.Remove("never"); ok {
		t.Error("Remove of unknown connection reported a member")
	}
	if got := usernames(r.ListByRoom("lobby")); len(got) != 1 || got[0] != "bob" {
		t.Errorf("ListByRoom = %v", got)
	}
	// The name is free again once its owner left.
	if _, err := r.Add("c3", "alice", "lobby"); err != nil {
		t.Errorf("re-adding freed name: %v", err)
	}
}

func TestRegistryListByRoomOrder(t *testing.T) {
	r := NewRegistry()
	_, _ = r.Add("c1", "carol", "lobby")
	_, _ = r.Add("c2", "alice", "other")
	_, _ = r.Add("c3", "bob", "lobby")
	_, _ = r.Add("c4", "dave", "LOBBY")

	got := usernames(r.ListByRoom(" Lobby "))
	want := []string{"carol", "bob", "dave"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("ListByRoom = %v, want %v", got, want)
	}
	if n := len(r.ListByRoom("empty")); n != 0 {
		t.Errorf("empty room has %d members", n)
	}
}

func TestRegistryListIsCopy(t *testing.T) {
	r := NewRegistry()
	_, _ = r.Add("c1", "alice", "lobby")
	list := r.ListByRoom("lobby")
	list[0].Username = "mallory"
	if m, _ := r.Get("c1"); m.Username != "alice" {
		t.Errorf("registry mutated through returned slice: %+v", m)
	}
}

func TestRegistryConcurrentSameName(t *testing.T) {
	r := NewRegistry()
	const n = 50
	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := r.Add(domain.ConnID(fmt.Sprintf("c%d", i)), "alice", "lobby"); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	if wins != 1 {
		t.Errorf("%d concurrent joins succeeded, want 1", wins)
	}
	if got := len(r.ListByRoom("lobby")); got != 1 {
		t.Errorf("lobby has %d members, want 1", got)
	}
}

func TestRegistryUniquenessUnderChurn(t *testing.T) {
	r := NewRegistry()
	names := []string{"a", "b", "A ", "c", " b"}
	for i := 0; i < 100; i++ {
		id := domain.ConnID(fmt.Sprintf("c%d", i))
		_, _ = r.Add(id, names[i%len(names)], "room")
		if i%3 == 0 {
			r.Remove(domain.ConnID(fmt.Sprintf("c%d", i/2)))
		}
		seen := map[string]bool{}
		for _, m := range r.ListByRoom("room") {
			if seen[m.Username] {
				t.Fatalf("duplicate username %q after step %d", m.Username, i)
			}
			seen[m.Username] = true
		}
	}
}
