package entities

// Principal is the authenticated caller of a request, as carried by the
// bearer token.
type Principal struct {
	UserID     uint   `json:"userId"`
	CompanyID  uint   `json:"companyId"`
	Username   string `json:"username"`
	Role       Role   `json:"role"`
	GlobalRole string `json:"globalRole"`
}

// IsSupportAdmin reports whether the principal has platform support access.
func (p Principal) IsSupportAdmin() bool {
	return IsSupportAdmin(p.Username, p.GlobalRole)
}
