package collector

import (
	"context"
	"strings"
	"testing"
)

func TestMockPostsNameThePlayer(t *testing.T) {
	mc := NewMockClient()
	posts, err := mc.SearchSubreddit(context.Background(), "nba", "Jayson Tatum", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) == 0 {
		t.Fatal("expected generated posts")
	}
	for _, p := range posts {
		if !strings.Contains(strings.ToLower(p.Title), "jayson tatum") {
			t.Errorf("title %q does not name the player", p.Title)
		}
	}
}

func TestMockCommentsNameThePlayer(t *testing.T) {
	mc := NewMockClient()
	ctx := context.Background()

	posts, err := mc.SearchSubreddit(ctx, "nba", "Jayson Tatum", 3)
	if err != nil {
		t.Fatal(err)
	}
	comments, err := mc.Comments(ctx, posts[0].ID, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(comments) != 3 {
		t.Fatalf("got %d comments; want 3", len(comments))
	}
	// Downstream relevance filtering keeps only comments that mention the
	// player, so generated bodies must carry the name.
	for _, c := range comments {
		if !strings.Contains(strings.ToLower(c.Body), "jayson tatum") {
			t.Errorf("comment %q does not name the player", c.Body)
		}
	}
}

func TestMockCommentsForForeignIDStillGenerate(t *testing.T) {
	mc := NewMockClient()
	comments, err := mc.Comments(context.Background(), "abc123", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(comments) != 2 {
		t.Fatalf("got %d comments; want 2", len(comments))
	}
	for _, c := range comments {
		if c.Body == "" {
			t.Error("empty comment body")
		}
	}
}

func TestMockSearchIsDeterministic(t *testing.T) {
	mc := NewMockClient()
	ctx := context.Background()

	a, _ := mc.SearchSubreddit(ctx, "nba", "Jayson Tatum", 5)
	b, _ := mc.SearchSubreddit(ctx, "nba", "Jayson Tatum", 5)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Score != b[i].Score || a[i].Author != b[i].Author {
			t.Fatalf("post %d differs between identical searches", i)
		}
	}
}
