package domain

import (
	"errors"
	"testing"
	"time"
)

func intPtr(v int) *int { return &v }

func birthYear(year int) *time.Time {
	t := time.Date(year, time.June, 15, 0, 0, 0, 0, time.UTC)
	return &t
}

func eligibilityFixture() *EligibilitySnapshot {
	return &EligibilitySnapshot{
		Child:    &Child{ChildID: 1, Name: "Aruzhan", BirthDate: birthYear(2018)},
		Program:  &Program{ProgramID: 1, MinAge: intPtr(5), MaxAge: intPtr(10)},
		Schedule: &Schedule{ScheduleID: 1, MaxStudents: 10},
		Today:    time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCheckEligibility(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*EligibilitySnapshot)
		wantErr error
	}{
		{
			name:   "eligible child passes",
			mutate: func(s *EligibilitySnapshot) {},
		},
		{
			name:    "missing child",
			mutate:  func(s *EligibilitySnapshot) { s.Child = nil },
			wantErr: ErrChildNotFound,
		},
		{
			name:    "missing schedule",
			mutate:  func(s *EligibilitySnapshot) { s.Schedule = nil },
			wantErr: ErrScheduleNotFound,
		},
		{
			name:    "active duplicate rejected",
			mutate:  func(s *EligibilitySnapshot) { s.AlreadyEnrolled = true },
			wantErr: ErrAlreadyEnrolled,
		},
		{
			name: "duplicate wins over full class",
			mutate: func(s *EligibilitySnapshot) {
				s.AlreadyEnrolled = true
				s.ActiveCount = 10
			},
			wantErr: ErrAlreadyEnrolled,
		},
		{
			name: "age one below minimum is too young",
			// 2026 - 2022 = 4, minimum 5.
			mutate:  func(s *EligibilitySnapshot) { s.Child.BirthDate = birthYear(2022) },
			wantErr: ErrTooYoung,
		},
		{
			name:   "age exactly at minimum is eligible",
			mutate: func(s *EligibilitySnapshot) { s.Child.BirthDate = birthYear(2021) },
		},
		{
			name:   "age exactly at maximum is eligible",
			mutate: func(s *EligibilitySnapshot) { s.Child.BirthDate = birthYear(2016) },
		},
		{
			name:    "age one above maximum is too old",
			mutate:  func(s *EligibilitySnapshot) { s.Child.BirthDate = birthYear(2015) },
			wantErr: ErrTooOld,
		},
		{
			name: "unknown birth date skips the age check",
			mutate: func(s *EligibilitySnapshot) {
				s.Child.BirthDate = nil
			},
		},
		{
			name: "no age bounds accepts any age",
			mutate: func(s *EligibilitySnapshot) {
				s.Child.BirthDate = birthYear(1990)
				s.Program.MinAge = nil
				s.Program.MaxAge = nil
			},
		},
		{
			name:    "class at capacity is full",
			mutate:  func(s *EligibilitySnapshot) { s.ActiveCount = 10 },
			wantErr: ErrClassFull,
		},
		{
			name:   "one seat left is still open",
			mutate: func(s *EligibilitySnapshot) { s.ActiveCount = 9 },
		},
		{
			name: "too young wins over full class",
			mutate: func(s *EligibilitySnapshot) {
				s.Child.BirthDate = birthYear(2023)
				s.ActiveCount = 10
			},
			wantErr: ErrTooYoung,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := eligibilityFixture()
			tt.mutate(snap)

			err := CheckEligibility(snap)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("CheckEligibility() returned %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CheckEligibility() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAgeOnUsesCalendarYears(t *testing.T) {
	// Month and day never matter: a child born in December 2020 already
	// counts as 6 on 1 January 2026.
	birth := time.Date(2020, time.December, 31, 0, 0, 0, 0, time.UTC)
	today := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	if got := AgeOn(birth, today); got != 6 {
		t.Errorf("AgeOn() = %d, want 6", got)
	}
}

func TestIsEligibilityError(t *testing.T) {
	wrapped := CheckEligibility(&EligibilitySnapshot{
		Child:    &Child{BirthDate: birthYear(2024)},
		Program:  &Program{MinAge: intPtr(5)},
		Schedule: &Schedule{MaxStudents: 10},
		Today:    time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
	})
	if !IsEligibilityError(wrapped) {
		t.Errorf("IsEligibilityError(%v) = false, want true", wrapped)
	}
	if IsEligibilityError(errors.New("connection refused")) {
		t.Error("IsEligibilityError matched an unrelated error")
	}
	if IsEligibilityError(nil) {
		t.Error("IsEligibilityError matched nil")
	}
}
