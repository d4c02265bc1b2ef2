package repositories

// Repositories holds all the repository instances. It is the single
// process-wide store: each repository owns its collection and id counter, and
// nothing outside a repository touches them.
type Repositories struct {
	CourseRepository       *CourseRepository
	VoiceCallLogRepository *VoiceCallLogRepository
	UserRepository         *UserRepository
}

// NewRepositories initializes all repositories with empty collections.
func NewRepositories() *Repositories {
	return &Repositories{
		CourseRepository:       NewCourseRepository(),
		VoiceCallLogRepository: NewVoiceCallLogRepository(),
		UserRepository:         NewUserRepository(),
	}
}
