package services

import (
	"context"
	"errors"
	"testing"

	"github.com/avolkov/dogshelter/internal/common"
	"github.com/avolkov/dogshelter/internal/server/models"
)

func TestDogCreate_Success(t *testing.T) {
	t.Parallel()

	m := newFakeRepoManager()
	images := &fakeImages{url: "https://images.dog.ceo/rex.jpg"}
	scheduler := &fakeScheduler{}
	svc := NewDogService(nil, m, images, scheduler, nopLogger{})

	owner := &models.User{ID: 3, Email: "a@x.com"}
	dog, err := svc.Create(context.Background(), "Rex", false, owner)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if dog.Picture != images.url {
		t.Fatalf("picture not taken from image client: %+v", dog)
	}
	if dog.UserID != owner.ID {
		t.Fatalf("dog not bound to owner: %+v", dog)
	}
	if len(scheduler.scheduled) != 1 || scheduler.scheduled[0] != "Rex" {
		t.Fatalf("expected stages scheduled for Rex, got %v", scheduler.scheduled)
	}
}

func TestDogCreate_Duplicate(t *testing.T) {
	t.Parallel()

	m := newFakeRepoManager()
	svc := NewDogService(nil, m, &fakeImages{url: "p"}, &fakeScheduler{}, nopLogger{})
	ctx := context.Background()
	owner := &models.User{ID: 3}

	if _, err := svc.Create(ctx, "Rex", false, owner); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	_, err := svc.Create(ctx, "Rex", false, owner)
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want common.ErrorAlreadyExists, got %v", err)
	}
}

func TestDogCreate_ImageFailure(t *testing.T) {
	t.Parallel()

	m := newFakeRepoManager()
	svc := NewDogService(nil, m, &fakeImages{err: common.ErrorUpstream}, &fakeScheduler{}, nopLogger{})

	_, err := svc.Create(context.Background(), "Rex", false, &models.User{ID: 3})
	if !errors.Is(err, common.ErrorUpstream) {
		t.Fatalf("want common.ErrorUpstream, got %v", err)
	}
	if len(m.dogs.byName) != 0 {
		t.Fatalf("no dog row should exist after image failure")
	}
}

func TestDogCreate_SchedulingFailureRollsBack(t *testing.T) {
	t.Parallel()

	m := newFakeRepoManager()
	scheduler := &fakeScheduler{err: common.ErrorTaskDelivery}
	svc := NewDogService(nil, m, &fakeImages{url: "p"}, scheduler, nopLogger{})

	_, err := svc.Create(context.Background(), "Rex", false, &models.User{ID: 3})
	if !errors.Is(err, common.ErrorTaskDelivery) {
		t.Fatalf("want common.ErrorTaskDelivery, got %v", err)
	}

	if _, err := m.dogs.GetByName(context.Background(), "Rex"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected compensating delete, dog still present: %v", err)
	}
	if len(m.dogs.deleted) != 1 || m.dogs.deleted[0] != "Rex" {
		t.Fatalf("expected delete of Rex, got %v", m.dogs.deleted)
	}
}

func TestDogUpdateAdoption(t *testing.T) {
	t.Parallel()

	m := newFakeRepoManager()
	svc := NewDogService(nil, m, &fakeImages{url: "p"}, &fakeScheduler{}, nopLogger{})
	ctx := context.Background()

	if _, err := svc.Create(ctx, "Rex", false, &models.User{ID: 3}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	dog, err := svc.UpdateAdoption(ctx, "Rex", true)
	if err != nil {
		t.Fatalf("UpdateAdoption error: %v", err)
	}
	if !dog.IsAdopted {
		t.Fatalf("expected adopted dog, got %+v", dog)
	}

	adopted, err := svc.ListAdopted(ctx)
	if err != nil {
		t.Fatalf("ListAdopted error: %v", err)
	}
	if len(adopted) != 1 {
		t.Fatalf("expected 1 adopted dog, got %d", len(adopted))
	}
}

func TestDogDelete_NotFound(t *testing.T) {
	t.Parallel()

	m := newFakeRepoManager()
	svc := NewDogService(nil, m, &fakeImages{url: "p"}, &fakeScheduler{}, nopLogger{})

	err := svc.Delete(context.Background(), "Ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}
