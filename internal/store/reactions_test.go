package store

import "testing"

func TestReactionCountsMatchRows(t *testing.T) {
	st := testStores(t)
	a, _ := st.Users.Create("a@x.com", "hash")
	b, _ := st.Users.Create("b@x.com", "hash")
	p, _ := st.Posts.Create(a.ID, "T", "C")

	rows := []struct {
		userID int64
		isLike bool
	}{
		{a.ID, true},
		{b.ID, true},
		{a.ID, false}, // a both likes and dislikes; the two kinds are independent
	}
	for _, row := range rows {
		if err := st.Reactions.Create(row.userID, p.ID, row.isLike); err != nil {
			t.Fatalf("create reaction: %v", err)
		}
	}

	likes, err := st.Reactions.CountLikes(p.ID)
	if err != nil {
		t.Fatalf("count likes: %v", err)
	}
	dislikes, err := st.Reactions.CountDislikes(p.ID)
	if err != nil {
		t.Fatalf("count dislikes: %v", err)
	}
	if likes != 2 || dislikes != 1 {
		t.Fatalf("got %d likes, %d dislikes", likes, dislikes)
	}
	if likes+dislikes != len(rows) {
		t.Fatalf("counts do not add up to row count")
	}
}

func TestReactionExists(t *testing.T) {
	st := testStores(t)
	u, _ := st.Users.Create("a@x.com", "hash")
	p, _ := st.Posts.Create(u.ID, "T", "C")

	exists, err := st.Reactions.Exists(u.ID, p.ID, true)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if exists {
		t.Fatal("no reaction yet, Exists should be false")
	}

	if err := st.Reactions.Create(u.ID, p.ID, true); err != nil {
		t.Fatalf("create: %v", err)
	}
	exists, err = st.Reactions.Exists(u.ID, p.ID, true)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Fatal("Exists should see the like")
	}

	// A like does not count as a dislike.
	exists, _ = st.Reactions.Exists(u.ID, p.ID, false)
	if exists {
		t.Fatal("dislike Exists should be false")
	}
}
