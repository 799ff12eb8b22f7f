package domain

import "testing"

func slot(teacherID, day int, start, end string) *Schedule {
	return &Schedule{
		TeacherID: teacherID,
		DayOfWeek: day,
		StartTime: start,
		EndTime:   end,
	}
}

func TestConflictsWith(t *testing.T) {
	tests := []struct {
		name string
		a, b *Schedule
		want bool
	}{
		{
			name: "identical slots conflict",
			a:    slot(1, 0, "09:00", "10:00"),
			b:    slot(1, 0, "09:00", "10:00"),
			want: true,
		},
		{
			name: "partial overlap conflicts",
			a:    slot(1, 0, "09:00", "10:30"),
			b:    slot(1, 0, "10:00", "11:00"),
			want: true,
		},
		{
			name: "contained interval conflicts",
			a:    slot(1, 2, "09:00", "12:00"),
			b:    slot(1, 2, "10:00", "11:00"),
			want: true,
		},
		{
			name: "touching intervals do not conflict",
			a:    slot(1, 0, "09:00", "10:00"),
			b:    slot(1, 0, "10:00", "11:00"),
			want: false,
		},
		{
			name: "disjoint intervals do not conflict",
			a:    slot(1, 0, "09:00", "10:00"),
			b:    slot(1, 0, "14:00", "15:00"),
			want: false,
		},
		{
			name: "different weekday never conflicts",
			a:    slot(1, 0, "09:00", "10:00"),
			b:    slot(1, 1, "09:00", "10:00"),
			want: false,
		},
		{
			name: "different teacher never conflicts",
			a:    slot(1, 0, "09:00", "10:00"),
			b:    slot(2, 0, "09:00", "10:00"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.ConflictsWith(tt.b); got != tt.want {
				t.Errorf("ConflictsWith() = %v, want %v", got, tt.want)
			}
			// The relation is symmetric.
			if got := tt.b.ConflictsWith(tt.a); got != tt.want {
				t.Errorf("reversed ConflictsWith() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:30", want: 570},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "9:30am", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseClock(%q) expected error, got %d", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClock(%q) returned error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestDayName(t *testing.T) {
	tests := []struct {
		day  int
		want string
	}{
		{day: 0, want: "Monday"},
		{day: 5, want: "Saturday"},
		{day: 6, want: "Sunday"},
		{day: 7, want: ""},
		{day: -1, want: ""},
	}

	for _, tt := range tests {
		s := &Schedule{DayOfWeek: tt.day}
		if got := s.DayName(); got != tt.want {
			t.Errorf("DayName() for day %d = %q, want %q", tt.day, got, tt.want)
		}
	}
}

func TestDurationMinutes(t *testing.T) {
	s := slot(1, 0, "09:15", "10:45")
	if got := s.DurationMinutes(); got != 90 {
		t.Errorf("DurationMinutes() = %d, want 90", got)
	}
}
