package seed

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	appModels "github.com/ersoy/studentms/internal/app/models"
	appRepos "github.com/ersoy/studentms/internal/app/repositories"
)

// demoStudents returns the sample records inserted into an empty store.
func demoStudents() []*appModels.Student {
	dob := func(year int, month time.Month, day int) *time.Time {
		d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		return &d
	}

	return []*appModels.Student{
		{
			FirstName:        "John",
			LastName:         "Doe",
			Email:            "john.doe@example.com",
			PhoneNumber:      "555-010-1234",
			DateOfBirth:      dob(2004, time.May, 17),
			Address:          "123 Main St",
			City:             "Springfield",
			State:            "IL",
			ZipCode:          "62704",
			EnrollmentStatus: appModels.StatusActive,
		},
		{
			FirstName:        "Jane",
			LastName:         "Smith",
			Email:            "jane.smith@example.com",
			PhoneNumber:      "555-010-5678",
			DateOfBirth:      dob(2003, time.November, 2),
			Address:          "456 Oak Ave",
			City:             "Springfield",
			State:            "IL",
			ZipCode:          "62702",
			EnrollmentStatus: appModels.StatusActive,
		},
		{
			FirstName:        "Carlos",
			LastName:         "Alvarez",
			Email:            "carlos.alvarez@example.com",
			PhoneNumber:      "555-010-9012",
			DateOfBirth:      dob(2001, time.February, 23),
			City:             "Chicago",
			State:            "IL",
			EnrollmentStatus: appModels.StatusGraduated,
		},
		{
			FirstName:        "Aisha",
			LastName:         "Khan",
			Email:            "aisha.khan@example.com",
			PhoneNumber:      "555-010-3456",
			DateOfBirth:      dob(2005, time.August, 9),
			City:             "Peoria",
			State:            "IL",
			ZipCode:          "61602",
			EnrollmentStatus: appModels.StatusInactive,
		},
	}
}

// CreateDefaultData inserts demo student records when the store is empty.
// A non-empty store is left untouched.
func CreateDefaultData(ctx context.Context, store appRepos.StudentStore, lgr zerolog.Logger) error {
	count, err := store.Count(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting students before seeding")
		return err
	}
	if count > 0 {
		lgr.Info().Int64("count", count).Msg("Store already holds records, skipping seed data")
		return nil
	}

	lgr.Info().Msg("Creating demo student records...")
	for _, student := range demoStudents() {
		if _, err := store.Create(ctx, student); err != nil {
			lgr.Error().Err(err).Str("email", student.Email).Msg("Error creating demo student")
			return err
		}
	}

	lgr.Info().Int("count", len(demoStudents())).Msg("Demo student records created")
	return nil
}
