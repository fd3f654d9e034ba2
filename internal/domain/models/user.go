package models

// User is an external collaborator of the tree engine. RootFolder is a
// soft reference: deleting the folder nulls it instead of cascading.
type User struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	RootFolder *int64 `json:"root_folder"`
}

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
