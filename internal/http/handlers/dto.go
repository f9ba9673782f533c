package handlers

type userExistsResponse struct {
	Message  string `json:"message"`
	Inserted bool   `json:"inserted"`
}

type insertedResponse struct {
	Inserted   bool   `json:"inserted"`
	InsertedID string `json:"insertedId"`
}

type deletedResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

type trackingRequest struct {
	TrackingID string `json:"tracking_id"`
	ParcelID   string `json:"parcel_id"`
	Status     string `json:"status"`
	Message    string `json:"message"`
	UpdatedBy  string `json:"updated_by"`
}

type trackingResponse struct {
	Success    bool   `json:"success"`
	InsertedID string `json:"insertedId"`
}

type recordPaymentRequest struct {
	ParcelID      string  `json:"parcelId"`
	Email         string  `json:"email"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	TransactionID string  `json:"transactionId"`
}

type paymentRecordedResponse struct {
	Message    string `json:"message"`
	InsertedID string `json:"insertedId"`
}

type createIntentRequest struct {
	AmountInCents int64 `json:"amountInCents"`
}

type clientSecretResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type gatewayErrorResponse struct {
	Error string `json:"error"`
}
