package worker

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/muyun-chen/stroke-sort/internal/collation"
	"github.com/muyun-chen/stroke-sort/internal/collation/codetable"
	"github.com/muyun-chen/stroke-sort/internal/collation/surname"
	"github.com/muyun-chen/stroke-sort/pkg/kafka"
)

type capturingPublisher struct {
	events []kafka.Event
}

func (p *capturingPublisher) Publish(ctx context.Context, event kafka.Event) error {
	p.events = append(p.events, event)
	return nil
}

func testWorker() (*Worker, *capturingPublisher) {
	table := codetable.Build([]codetable.Record{
		{Word: "欧", Order: "10"},
		{Word: "阳", Order: "20"},
		{Word: "锋", Order: "5"},
	}, "")
	collator := collation.New(table, surname.NewSet([]string{"欧阳"}))
	pub := &capturingPublisher{}
	return New(collator, pub, nil), pub
}

func TestHandleSortsAndPublishes(t *testing.T) {
	w, pub := testWorker()
	payload, _ := json.Marshal(SortJob{JobID: "job-1", Names: []string{"欧阳锋", "锋"}})

	if err := w.Handle(context.Background(), []byte("job-1"), payload); err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if len(pub.events) != 1 {
		t.Fatalf("published %d events, want 1", len(pub.events))
	}
	result, ok := pub.events[0].Value.(SortResult)
	if !ok {
		t.Fatalf("event value is %T, want SortResult", pub.events[0].Value)
	}
	if result.JobID != "job-1" {
		t.Errorf("JobID = %q", result.JobID)
	}
	if result.Error != "" {
		t.Errorf("Error = %q, want empty", result.Error)
	}
	want := []string{"锋", "欧阳锋"}
	if !reflect.DeepEqual(result.Sorted, want) {
		t.Errorf("Sorted = %v, want %v", result.Sorted, want)
	}
}

func TestHandleRejectedJobPublishesError(t *testing.T) {
	w, pub := testWorker()
	payload, _ := json.Marshal(SortJob{JobID: "job-2", Names: []string{"锋", ""}})

	if err := w.Handle(context.Background(), []byte("job-2"), payload); err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if len(pub.events) != 1 {
		t.Fatalf("published %d events, want 1", len(pub.events))
	}
	result := pub.events[0].Value.(SortResult)
	if result.Error == "" {
		t.Error("Error is empty, want rejection message")
	}
	if len(result.Sorted) != 0 {
		t.Errorf("Sorted = %v, want empty", result.Sorted)
	}
}

func TestHandleDropsUndecodablePayload(t *testing.T) {
	w, pub := testWorker()
	if err := w.Handle(context.Background(), []byte("bad"), []byte("{not json")); err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if len(pub.events) != 0 {
		t.Errorf("published %d events for undecodable payload, want 0", len(pub.events))
	}
}
