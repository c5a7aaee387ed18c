package store

import (
	"context"
	"time"
)

var seedStamp = time.Date(2023, time.July, 1, 9, 0, 0, 0, time.UTC)

// SeedDemoData loads the demo roster and a week of demo appointments so a
// fresh instance renders a populated grid. Errors abort on first failure;
// callers seed into an empty store.
func SeedDemoData(ctx context.Context, m *Memory) error {
	for _, employee := range DemoEmployees() {
		if err := m.CreateEmployee(ctx, employee); err != nil {
			return err
		}
	}
	for _, appointment := range DemoAppointments() {
		if err := m.CreateAppointment(ctx, appointment); err != nil {
			return err
		}
	}
	return nil
}

// DemoEmployees returns the demo roster.
func DemoEmployees() []Employee {
	return []Employee{
		{
			ID:         "#28373",
			Name:       "Olamide Akintan",
			Email:      "olamideakintan@gmail.com",
			Category:   "Label",
			ReportTo:   "Roxanne Justina",
			Avatar:     "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=400",
			Department: "Management",
			Position:   "Operations Lead",
			Status:     EmployeeActive,
			JoinedDate: "2023-01-15",
			CreatedAt:  seedStamp,
			UpdatedAt:  seedStamp,
		},
		{
			ID:         "#32876",
			Name:       "Alison David",
			Email:      "alisondavid@gmail.com",
			Category:   "Label",
			ReportTo:   "Victor Black",
			Avatar:     "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=400",
			Department: "Sales",
			Position:   "Account Executive",
			Status:     EmployeeActive,
			JoinedDate: "2023-02-20",
			CreatedAt:  seedStamp,
			UpdatedAt:  seedStamp,
		},
		{
			ID:         "#11394",
			Name:       "Megan Willow",
			Email:      "meganwillow@gmail.com",
			Category:   "Label",
			ReportTo:   "Amaree Savil",
			Avatar:     "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=400",
			Department: "Marketing",
			Position:   "Campaign Manager",
			Status:     EmployeeActive,
			JoinedDate: "2023-03-10",
			CreatedAt:  seedStamp,
			UpdatedAt:  seedStamp,
		},
		{
			ID:         "#99822",
			Name:       "Janelle Levi",
			Email:      "janellelevi@gmail.com",
			Category:   "Label",
			ReportTo:   "Wilson Qlilex",
			Avatar:     "https://images.pexels.com/photos/1130626/pexels-photo-1130626.jpeg?auto=compress&cs=tinysrgb&w=400",
			Department: "HR",
			Position:   "People Partner",
			Status:     EmployeeOnLeave,
			JoinedDate: "2023-04-05",
			CreatedAt:  seedStamp,
			UpdatedAt:  seedStamp,
		},
		{
			ID:         "#11873",
			Name:       "King Fisher",
			Email:      "kingfisher@gmail.com",
			Category:   "Label",
			ReportTo:   "Roxanne Justina",
			Avatar:     "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=400",
			Department: "IT",
			Position:   "Platform Engineer",
			Status:     EmployeeActive,
			JoinedDate: "2023-05-12",
			CreatedAt:  seedStamp,
			UpdatedAt:  seedStamp,
		},
		{
			ID:         "#33644",
			Name:       "Olivia Mahun",
			Email:      "oliviamahun@gmail.com",
			Category:   "Label",
			ReportTo:   "Danielle Maxel",
			Avatar:     "https://images.pexels.com/photos/1036623/pexels-photo-1036623.jpeg?auto=compress&cs=tinysrgb&w=400",
			Department: "Finance",
			Position:   "Payroll Analyst",
			Status:     EmployeeActive,
			JoinedDate: "2023-06-18",
			CreatedAt:  seedStamp,
			UpdatedAt:  seedStamp,
		},
		{
			ID:         "#00297",
			Name:       "Vivian Kalu",
			Email:      "viviankalu@gmail.com",
			Category:   "Label",
			ReportTo:   "Victor Black",
			Avatar:     "https://images.pexels.com/photos/1681010/pexels-photo-1681010.jpeg?auto=compress&cs=tinysrgb&w=400",
			Department: "Support",
			Position:   "Support Specialist",
			Status:     EmployeeActive,
			JoinedDate: "2023-07-22",
			CreatedAt:  seedStamp,
			UpdatedAt:  seedStamp,
		},
	}
}

// DemoAppointments returns a week of demo appointments within the 8-17 hour
// window used by the default grid.
func DemoAppointments() []Appointment {
	return []Appointment{
		{
			ID:             "apt-001",
			Title:          "Weekly Standup",
			ParticipantIDs: []string{"#28373", "#32876", "#11394"},
			TimeLabel:      "9am - 10am",
			Duration:       1,
			Day:            0,
			StartHour:      9,
			Location:       "Conference Room A",
			Type:           "meeting",
			Description:    "Team sync on weekly goals",
			Status:         StatusScheduled,
			Color:          "blue",
			CreatedAt:      seedStamp,
			UpdatedAt:      seedStamp,
		},
		{
			ID:             "apt-002",
			Title:          "Client Consultation",
			ParticipantIDs: []string{"#32876", "#00297"},
			TimeLabel:      "11am - 12pm",
			Duration:       1,
			Day:            1,
			StartHour:      11,
			Location:       "Meeting Room 2",
			Type:           "consultation",
			Description:    "Quarterly account review",
			Status:         StatusScheduled,
			Color:          "green",
			CreatedAt:      seedStamp,
			UpdatedAt:      seedStamp,
		},
		{
			ID:             "apt-003",
			Title:          "Campaign Review",
			ParticipantIDs: []string{"#11394", "#33644", "#11873", "#99822"},
			TimeLabel:      "2pm - 3.30pm",
			Duration:       1.5,
			Day:            2,
			StartHour:      14,
			Location:       "Main Hall",
			Type:           "meeting",
			Description:    "July campaign performance walkthrough",
			Status:         StatusScheduled,
			Color:          "orange",
			CreatedAt:      seedStamp,
			UpdatedAt:      seedStamp,
		},
		{
			ID:             "apt-004",
			Title:          "Onboarding Session",
			ParticipantIDs: []string{"#99822", "#00297"},
			TimeLabel:      "10am - 11am",
			Duration:       1,
			Day:            3,
			StartHour:      10,
			Location:       "Training Room",
			Type:           "appointment",
			Description:    "New hire orientation",
			Status:         StatusScheduled,
			Color:          "pink",
			CreatedAt:      seedStamp,
			UpdatedAt:      seedStamp,
		},
		{
			ID:             "apt-005",
			Title:          "Payroll Checkpoint",
			ParticipantIDs: []string{"#33644", "#28373"},
			TimeLabel:      "9am - 9.30am",
			Duration:       0.5,
			Day:            4,
			StartHour:      9,
			Location:       "Finance Office",
			Type:           "meeting",
			Status:         StatusScheduled,
			Color:          "purple",
			CreatedAt:      seedStamp,
			UpdatedAt:      seedStamp,
		},
		{
			ID:             "apt-006",
			Title:          "Platform Maintenance Window",
			ParticipantIDs: []string{"#11873"},
			TimeLabel:      "4pm - 6pm",
			Duration:       2,
			Day:            5,
			StartHour:      16,
			Location:       "Remote",
			Type:           "appointment",
			Description:    "Scheduled infrastructure upgrade",
			Status:         StatusScheduled,
			Color:          "blue",
			CreatedAt:      seedStamp,
			UpdatedAt:      seedStamp,
		},
	}
}
