package storage

import (
	"bytes"
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRedisRecorder(t *testing.T) *RedisRecorder {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})
	return NewRedisRecorderWithClient(client)
}

func TestRedisRecorder_RoundTrip(t *testing.T) {
	recorder := newRedisRecorder(t)
	ctx := context.Background()

	if _, ok, err := recorder.Get(ctx, "ppe_user"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}

	want := []byte(`{"username":"manager"}`)
	if err := recorder.Set(ctx, "ppe_user", want); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := recorder.Get(ctx, "ppe_user")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("Get = %q, want %q", got, want)
	}
}

func TestRedisRecorder_RemoveIdempotent(t *testing.T) {
	recorder := newRedisRecorder(t)
	ctx := context.Background()

	if err := recorder.Set(ctx, "ppe_user", []byte("x")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := recorder.Remove(ctx, "ppe_user"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := recorder.Remove(ctx, "ppe_user"); err != nil {
		t.Fatalf("second Remove: %v", err)
	}
	if _, ok, _ := recorder.Get(ctx, "ppe_user"); ok {
		t.Fatal("record present after Remove")
	}
}

func TestRedisRecorder_Ping(t *testing.T) {
	recorder := newRedisRecorder(t)
	if err := recorder.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}
