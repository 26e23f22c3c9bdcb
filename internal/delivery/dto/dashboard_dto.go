package dto

type DashboardResponse struct {
	TotalPatients        int64                 `json:"totalPatients"`
	TotalDoctors         int64                 `json:"totalDoctors"`
	TotalAppointments    int64                 `json:"totalAppointments"`
	AppointmentsToday    int64                 `json:"appointmentsToday"`
	UpcomingAppointments []AppointmentResponse `json:"upcomingAppointments"`
}
