package domain

import "time"

// Profiles attached to a user record. Every capability check in the API
// derives from this list; administrators pass every check.
const (
	ProfileMember     = "integrante"
	ProfileAdmin      = "administrador"
	ProfileTransport  = "transporte"
	ProfileFinance    = "finanzas"
	ProfileInventory  = "inventario"
	ProfileDocuments  = "documentos"
	ProfileEvaluator  = "evaluador"
	ProfileSongEditor = "editor-canciones"
)

// AvailableProfiles lists every profile the admin panel may grant.
var AvailableProfiles = []string{
	ProfileMember,
	ProfileAdmin,
	ProfileTransport,
	ProfileFinance,
	ProfileInventory,
	ProfileDocuments,
	ProfileEvaluator,
	ProfileSongEditor,
}

type Capability string

const (
	CapManageUsers     Capability = "manage-users"
	CapManageEvents    Capability = "manage-events"
	CapManageTransport Capability = "manage-transport"
	CapManageFinances  Capability = "manage-finances"
	CapManageTickets   Capability = "manage-tickets"
	CapManageInventory Capability = "manage-inventory"
	CapManageDocuments Capability = "manage-documents"
	CapEvaluateMembers Capability = "evaluate-members"
	CapEditSongs       Capability = "edit-songs"
)

// capabilityProfiles maps a capability to the non-admin profiles that grant it.
var capabilityProfiles = map[Capability][]string{
	CapManageUsers:     nil,
	CapManageEvents:    nil,
	CapManageTransport: {ProfileTransport},
	CapManageFinances:  {ProfileFinance},
	CapManageTickets:   {ProfileFinance},
	CapManageInventory: {ProfileInventory},
	CapManageDocuments: {ProfileDocuments},
	CapEvaluateMembers: {ProfileEvaluator},
	CapEditSongs:       {ProfileSongEditor},
}

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Profiles       []string  `json:"profiles"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Name           string
	Email          string
	Profiles       []string
	TelegramChatID *int64
}

func (u *User) HasProfile(profile string) bool {
	for _, p := range u.Profiles {
		if p == profile {
			return true
		}
	}
	return false
}

func (u *User) IsAdmin() bool {
	return u.HasProfile(ProfileAdmin)
}

// Can reports whether the user's profiles grant the capability.
func (u *User) Can(c Capability) bool {
	if u.IsAdmin() {
		return true
	}
	for _, p := range capabilityProfiles[c] {
		if u.HasProfile(p) {
			return true
		}
	}
	return false
}

func ValidProfile(profile string) bool {
	for _, p := range AvailableProfiles {
		if p == profile {
			return true
		}
	}
	return false
}
