package request

// DateRangeRequest - kosong berarti default 12 bulan terakhir
type DateRangeRequest struct {
	From string `validate:"omitempty,datetime=2006-01-02"`
	To   string `validate:"omitempty,datetime=2006-01-02"`
}
