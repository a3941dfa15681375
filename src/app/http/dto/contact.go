package dto

// ListContactsQuery is the paging window for GET /api/contacts.
type ListContactsQuery struct {
	Limit  int `form:"limit,default=10" binding:"min=0,max=500"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}
