package api

type registerInput struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateMeInput struct {
	Name      *string `json:"name" validate:"omitempty,min=1"`
	Username  *string `json:"username"`
	UseMetric *bool   `json:"useMetric"`
	CheckMark *string `json:"checkMark"`
	Image     *string `json:"image"`
}

type scheduleInput struct {
	EffectiveFrom string `json:"effectiveFrom" validate:"required,datetime=2006-01-02"`
	Monday        bool   `json:"monday"`
	Tuesday       bool   `json:"tuesday"`
	Wednesday     bool   `json:"wednesday"`
	Thursday      bool   `json:"thursday"`
	Friday        bool   `json:"friday"`
	Saturday      bool   `json:"saturday"`
	Sunday        bool   `json:"sunday"`
}

type upsertTrackInput struct {
	Name       string          `json:"name" validate:"required"`
	Visibility string          `json:"visibility" validate:"omitempty,oneof=Public Private"`
	Schedules  []scheduleInput `json:"schedules" validate:"required,len=1,dive"`
}

type upsertStatInput struct {
	Date    string   `json:"date" validate:"required,datetime=2006-01-02"`
	TrackID string   `json:"trackId" validate:"required,uuid4"`
	Value   *float64 `json:"value" validate:"required"`
}

type listStatsQuery struct {
	FollowingIDs []string `validate:"required,min=1,dive,uuid4"`
	Cursor       string   `validate:"required,datetime=2006-01-02"`
	Limit        int      `validate:"required,gt=0"`
}
