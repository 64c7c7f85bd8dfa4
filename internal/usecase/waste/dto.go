package waste

import (
	"time"

	"github.com/google/uuid"

	domainWaste "wastetrack/internal/domain/waste"
	"wastetrack/internal/wasteguide"
)

type ClassifyRequest struct {
	WasteType    string   `json:"waste_type" validate:"required,max=100"`
	ImageURL     string   `json:"image_url" validate:"omitempty,url"`
	WeightAmount *float64 `json:"weight_amount" validate:"omitempty,gte=0"`
	WeightUnit   string   `json:"weight_unit" validate:"omitempty,oneof=g kg"`
}

type FeedbackRequest struct {
	IsCorrect  bool   `json:"is_correct"`
	ActualType string `json:"actual_type" validate:"omitempty,max=100"`
	Comments   string `json:"comments" validate:"omitempty,max=1000"`
}

type ListQuery struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

type RecordResponse struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`

	WasteType string `json:"waste_type"`
	Category  string `json:"category"`

	ImageURL   string  `json:"image_url,omitempty"`
	Confidence float64 `json:"confidence"`

	ProperlySegregated   bool     `json:"properly_segregated"`
	DisposalInstructions string   `json:"disposal_instructions"`
	BinColor             string   `json:"bin_color"`
	Tips                 []string `json:"tips,omitempty"`
	Warning              string   `json:"warning,omitempty"`
	RecyclingBenefit     string   `json:"recycling_benefit,omitempty"`

	WeightAmount *float64 `json:"weight_amount,omitempty"`
	WeightUnit   string   `json:"weight_unit,omitempty"`

	FeedbackIsCorrect  *bool  `json:"feedback_is_correct,omitempty"`
	FeedbackActualType string `json:"feedback_actual_type,omitempty"`
	FeedbackComments   string `json:"feedback_comments,omitempty"`

	ClassifiedAt time.Time `json:"classified_at"`
}

type StatsResponse struct {
	TotalClassifications int64            `json:"total_classifications"`
	CategoryBreakdown    map[string]int64 `json:"category_breakdown"`
	ProperlySegregated   int64            `json:"properly_segregated"`
	SegregationRate      string           `json:"segregation_rate"`
	RecentActivity       int64            `json:"recent_activity"`
}

type GuideEntryResponse struct {
	Category             string   `json:"category"`
	WasteType            string   `json:"waste_type"`
	BinColor             string   `json:"bin_color"`
	Items                []string `json:"items"`
	DisposalInstructions string   `json:"disposal_instructions"`
	Tips                 []string `json:"tips,omitempty"`
	Warning              string   `json:"warning,omitempty"`
	RecyclingBenefit     string   `json:"recycling_benefit,omitempty"`
}

type SearchResultResponse struct {
	GuideEntryResponse
	MatchingItems []string `json:"matching_items"`
}

func ToRecordResponse(r *domainWaste.Record, entry *wasteguide.Entry) *RecordResponse {
	if r == nil {
		return nil
	}
	resp := &RecordResponse{
		ID:                   r.ID,
		UserID:               r.UserID,
		WasteType:            r.WasteType,
		Category:             string(r.Category),
		ImageURL:             r.ImageURL,
		Confidence:           r.Confidence,
		ProperlySegregated:   r.ProperlySegregated,
		DisposalInstructions: r.DisposalInstructions,
		BinColor:             string(r.BinColor),
		WeightAmount:         r.WeightAmount,
		WeightUnit:           r.WeightUnit,
		FeedbackIsCorrect:    r.FeedbackIsCorrect,
		FeedbackActualType:   r.FeedbackActualType,
		FeedbackComments:     r.FeedbackComments,
		ClassifiedAt:         r.ClassifiedAt,
	}
	if entry != nil {
		resp.Tips = entry.Tips
		resp.Warning = entry.Warning
		resp.RecyclingBenefit = entry.RecyclingBenefit
	}
	return resp
}

func ToGuideEntryResponse(e wasteguide.Entry) GuideEntryResponse {
	return GuideEntryResponse{
		Category:             string(e.Category),
		WasteType:            e.WasteType,
		BinColor:             string(e.BinColor),
		Items:                e.Items,
		DisposalInstructions: e.DisposalInstructions,
		Tips:                 e.Tips,
		Warning:              e.Warning,
		RecyclingBenefit:     e.RecyclingBenefit,
	}
}
