package auth

// Roles carried in token claims. Clinic admins log in with the admin role.
const (
	RoleAdmin       = "admin"
	RoleClient      = "client"
	RoleDoctor      = "doctor"
	RoleAssistant   = "assistant"
	RoleClinicAdmin = "clinicAdmin"
)
