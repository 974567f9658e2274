package models

// Credentials is the body of /register and /login. It is forwarded to the
// Supabase auth API unchanged, so no format validation happens here.
type Credentials struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// DecisionRequest is one journal entry: what was traded and why.
// Price and Volume are pointers so that zero values pass "required".
type DecisionRequest struct {
	Action string   `json:"action" binding:"required"`
	Reason string   `json:"reason" binding:"required"`
	Price  *float64 `json:"price" binding:"required"`
	Volume *float64 `json:"volume" binding:"required"`
}

// UploadRequest carries an imported market data file as parsed JSON.
type UploadRequest struct {
	Filename string                 `json:"filename" binding:"required"`
	RawData  map[string]interface{} `json:"raw_data" binding:"required"`
}

// AnalyzeRequest asks for a recommendation for the given price.
// Thresholds must be present but may be an empty object.
type AnalyzeRequest struct {
	Price      *float64           `json:"price" binding:"required"`
	Thresholds map[string]float64 `json:"thresholds" binding:"required"`
}

// DecisionRecord is the row inserted into the decisions table, the
// caller identity and server timestamp already attached.
type DecisionRecord struct {
	UserID    string  `json:"user_id"`
	Timestamp string  `json:"timestamp"`
	Action    string  `json:"action"`
	Reason    string  `json:"reason"`
	Price     float64 `json:"price"`
	Volume    float64 `json:"volume"`
}

// UploadRecord is the row inserted into the uploads table.
type UploadRecord struct {
	UserID     string                 `json:"user_id"`
	UploadedAt string                 `json:"uploaded_at"`
	Filename   string                 `json:"filename"`
	RawData    map[string]interface{} `json:"raw_data"`
}
