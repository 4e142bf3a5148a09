package service

// Тесты документов событий с фиксированными ключами (internal/service/events.go)
// и единственного журнала (internal/service/magazine.go).

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/college-console/internal/models"
	"github.com/pribylovaa/college-console/internal/storage"
)

func eventInput() EventInput {
	return EventInput{
		Heading:       "Mat Kabbadi 2026",
		Description:   "Annual kabbadi tournament",
		GoogleFormURL: "https://forms.example.com/kabbadi",
		FlipbookURL:   "https://flipbook.example.com/kabbadi",
	}
}

// Ключ не из словаря — отказ до обращения к хранилищу.
func TestService_Events_UnknownKey(t *testing.T) {
	s, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	_, err := s.EventByKey(context.Background(), "sports-day")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.SaveEvent(context.Background(), "sports-day", eventInput())
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// Каждое из четырёх обязательных полей в отдельности валит сохранение.
func TestService_SaveEvent_RequiredFields(t *testing.T) {
	s, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	for _, mutate := range []func(*EventInput){
		func(in *EventInput) { in.Heading = "  " },
		func(in *EventInput) { in.Description = "" },
		func(in *EventInput) { in.GoogleFormURL = "" },
		func(in *EventInput) { in.FlipbookURL = "" },
	} {
		in := eventInput()
		mutate(&in)

		_, err := s.SaveEvent(context.Background(), "mat-kabbadi", in)
		require.ErrorIs(t, err, ErrInvalidArgument)
	}
}

// Сохранение перезаписывает документ целиком — стораджу уходит полный
// документ с ключом.
func TestService_SaveEvent_OK(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	in := eventInput()
	in.Venue = " Main ground "

	ms.EXPECT().
		UpsertEvent(gomock.Any(), models.EventSection{
			Key:           "footprints",
			Heading:       in.Heading,
			Description:   in.Description,
			GoogleFormURL: in.GoogleFormURL,
			FlipbookURL:   in.FlipbookURL,
			Venue:         "Main ground",
		}).
		Return(nil)

	got, err := s.SaveEvent(context.Background(), "footprints", in)
	require.NoError(t, err)
	require.Equal(t, "footprints", got.Key)
	require.Equal(t, "Main ground", got.Venue)
}

func TestService_EventByKey(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().EventByKey(gomock.Any(), "mat-kabbadi").Return(nil, storage.ErrNotFound)
	_, err := s.EventByKey(context.Background(), "mat-kabbadi")
	require.ErrorIs(t, err, ErrNotFound)

	want := &models.EventSection{Key: "mat-kabbadi", Heading: "h"}
	ms.EXPECT().EventByKey(gomock.Any(), "mat-kabbadi").Return(want, nil)
	got, err := s.EventByKey(context.Background(), "mat-kabbadi")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestService_SaveMagazine_Validation(t *testing.T) {
	s, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	for _, in := range []MagazineInput{
		{Name: "", URL: "https://mag.example.com/2026"},
		{Name: "Annual 2026", URL: ""},
		{Name: "Annual 2026", URL: "not-a-url"},
		{Name: "Annual 2026", URL: "ftp://mag.example.com"},
	} {
		_, err := s.SaveMagazine(context.Background(), in)
		require.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestService_Magazine_Lifecycle(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	want := &models.Magazine{Name: "Annual 2026", URL: "https://mag.example.com/2026"}

	ms.EXPECT().
		UpsertMagazine(gomock.Any(), models.Magazine{Name: want.Name, URL: want.URL}).
		Return(want, nil)
	got, err := s.SaveMagazine(context.Background(), MagazineInput{Name: want.Name, URL: want.URL})
	require.NoError(t, err)
	require.Equal(t, want, got)

	ms.EXPECT().Magazine(gomock.Any()).Return(want, nil)
	got, err = s.Magazine(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)

	ms.EXPECT().DeleteMagazine(gomock.Any()).Return(nil)
	require.NoError(t, s.DeleteMagazine(context.Background()))

	ms.EXPECT().Magazine(gomock.Any()).Return(nil, storage.ErrNotFound)
	_, err = s.Magazine(context.Background())
	require.ErrorIs(t, err, ErrNotFound)

	ms.EXPECT().DeleteMagazine(gomock.Any()).Return(errors.New("boom"))
	require.ErrorIs(t, s.DeleteMagazine(context.Background()), ErrInternal)
}
