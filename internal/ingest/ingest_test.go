// FilePath: internal/ingest/ingest_test.go
package ingest_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/prodvision/floorhub/internal/errors"
	"github.com/prodvision/floorhub/internal/ingest"
	"github.com/prodvision/floorhub/internal/models"
	"github.com/prodvision/floorhub/internal/repository/memory"
)

func validSubmission() ingest.Submission {
	return ingest.Submission{
		Timestamp:     "2026-03-10T10:00:00Z",
		WorkerID:      "W1",
		WorkstationID: "S1",
		EventType:     "working",
		Confidence:    0.95,
	}
}

// failingStore simulates an outage on Append.
type failingStore struct {
	*memory.EventRepo
	failAfter int
	appends   int
}

func (s *failingStore) Append(ctx context.Context, event *models.Event) (bool, error) {
	s.appends++
	if s.appends > s.failAfter {
		return false, errors.NewDatabaseError("store unavailable", nil)
	}
	return s.EventRepo.Append(ctx, event)
}

func TestIngestOne(t *testing.T) {
	Convey("Given a pipeline backed by an empty store", t, func() {
		store := memory.NewEventRepository()
		pipeline := ingest.NewPipeline(store, 0)
		ctx := context.Background()

		Convey("When a valid submission arrives", func() {
			event, stored, err := pipeline.IngestOne(ctx, validSubmission())

			Convey("Then it is validated, stamped and stored", func() {
				So(err, ShouldBeNil)
				So(stored, ShouldBeTrue)
				So(event.ID, ShouldNotBeEmpty)
				So(event.EventType, ShouldEqual, models.EventKindWorking)
				So(event.Timestamp.Equal(time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)), ShouldBeTrue)
				So(event.ReceivedAt.IsZero(), ShouldBeFalse)
			})
		})

		Convey("When the same submission is delivered twice", func() {
			_, first, err1 := pipeline.IngestOne(ctx, validSubmission())
			_, second, err2 := pipeline.IngestOne(ctx, validSubmission())

			Convey("Then the redelivery is a duplicate, not an error", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(first, ShouldBeTrue)
				So(second, ShouldBeFalse)

				count, _ := store.Count(ctx, models.EventFilter{})
				So(count, ShouldEqual, 1)
			})
		})

		Convey("When the timestamp is malformed", func() {
			sub := validSubmission()
			sub.Timestamp = "yesterday at noon"
			_, _, err := pipeline.IngestOne(ctx, sub)

			Convey("Then it is rejected as validation failure", func() {
				So(errors.IsValidation(err), ShouldBeTrue)
			})
		})

		Convey("When the confidence is out of range", func() {
			for _, confidence := range []float64{-0.1, 1.1} {
				sub := validSubmission()
				sub.Confidence = confidence
				_, _, err := pipeline.IngestOne(ctx, sub)
				So(errors.IsValidation(err), ShouldBeTrue)
			}

			Convey("And the inclusive bounds are accepted", func() {
				for i, confidence := range []float64{0, 1} {
					sub := validSubmission()
					sub.Confidence = confidence
					sub.WorkerID = fmt.Sprintf("W%d", i+10)
					_, stored, err := pipeline.IngestOne(ctx, sub)
					So(err, ShouldBeNil)
					So(stored, ShouldBeTrue)
				}
			})
		})

		Convey("When the event type is unrecognized", func() {
			sub := validSubmission()
			sub.EventType = "daydreaming"
			_, _, err := pipeline.IngestOne(ctx, sub)

			So(errors.IsValidation(err), ShouldBeTrue)
		})

		Convey("When the count is negative", func() {
			sub := validSubmission()
			sub.EventType = "product_count"
			sub.Count = -3
			_, _, err := pipeline.IngestOne(ctx, sub)

			So(errors.IsValidation(err), ShouldBeTrue)
		})

		Convey("When nothing was rejected", func() {
			Convey("Then a count on a state event is persisted as given", func() {
				sub := validSubmission()
				sub.Count = 4
				event, stored, err := pipeline.IngestOne(ctx, sub)
				So(err, ShouldBeNil)
				So(stored, ShouldBeTrue)
				So(event.Count, ShouldEqual, 4)
			})
		})
	})
}

func TestIngestBatch(t *testing.T) {
	Convey("Given a pipeline with a small batch cap", t, func() {
		store := memory.NewEventRepository()
		pipeline := ingest.NewPipeline(store, 10)
		ctx := context.Background()

		Convey("When the batch is empty", func() {
			_, err := pipeline.IngestBatch(ctx, nil)

			Convey("Then the whole request is rejected", func() {
				So(errors.IsValidation(err), ShouldBeTrue)
			})
		})

		Convey("When the batch exceeds the cap", func() {
			subs := make([]ingest.Submission, 11)
			for i := range subs {
				subs[i] = validSubmission()
			}
			_, err := pipeline.IngestBatch(ctx, subs)

			Convey("Then the whole request is rejected before any element is processed", func() {
				So(errors.IsValidation(err), ShouldBeTrue)
				count, _ := store.Count(ctx, models.EventFilter{})
				So(count, ShouldEqual, 0)
			})
		})

		Convey("When a batch mixes valid, duplicate and invalid elements", func() {
			good := validSubmission()
			dup := validSubmission()
			other := validSubmission()
			other.WorkerID = "W2"
			badTime := validSubmission()
			badTime.Timestamp = "not-a-time"
			badKind := validSubmission()
			badKind.EventType = "nap"

			result, err := pipeline.IngestBatch(ctx, []ingest.Submission{good, badTime, dup, other, badKind})

			Convey("Then elements succeed and fail independently", func() {
				So(err, ShouldBeNil)
				So(result.TotalReceived, ShouldEqual, 5)
				So(result.SuccessfullyStored, ShouldEqual, 2)
				So(result.DuplicatesSkipped, ShouldEqual, 1)
				So(len(result.Errors), ShouldEqual, 2)
			})

			Convey("Then each rejection names its element index and kind", func() {
				So(err, ShouldBeNil)
				So(result.Errors[0].Index, ShouldEqual, 1)
				So(result.Errors[0].Kind, ShouldEqual, ingest.RejectInvalidTimestamp)
				So(result.Errors[1].Index, ShouldEqual, 4)
				So(result.Errors[1].Kind, ShouldEqual, ingest.RejectInvalidKind)
			})

			Convey("Then the counts add up to the total", func() {
				So(err, ShouldBeNil)
				So(result.SuccessfullyStored+result.DuplicatesSkipped+len(result.Errors),
					ShouldEqual, result.TotalReceived)
			})
		})

		Convey("When the store fails mid-batch", func() {
			failing := &failingStore{EventRepo: memory.NewEventRepository(), failAfter: 1}
			p := ingest.NewPipeline(failing, 10)

			a := validSubmission()
			b := validSubmission()
			b.WorkerID = "W2"

			result, err := p.IngestBatch(ctx, []ingest.Submission{a, b})

			Convey("Then the whole request fails", func() {
				So(result, ShouldBeNil)
				So(err, ShouldNotBeNil)
				So(errors.IsValidation(err), ShouldBeFalse)
			})
		})
	})
}

func TestPipelineDefaults(t *testing.T) {
	Convey("Given a pipeline constructed without a batch cap", t, func() {
		pipeline := ingest.NewPipeline(memory.NewEventRepository(), 0)

		Convey("Then the default cap applies", func() {
			So(pipeline.MaxBatchSize(), ShouldEqual, ingest.DefaultMaxBatchSize)
		})
	})
}
