package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pribylovaa/college-console/pkg/log"

	"github.com/pribylovaa/college-console/internal/models"
)

// InquiryPageResult — страница обращений после фильтра.
type InquiryPageResult struct {
	Items []models.Inquiry
	State PageState
}

// InquiryPage — табличный экран обращений с публичного сайта.
// Экран только на чтение: обращения создаёт сайт, консоль их просматривает.
func (s *Service) InquiryPage(ctx context.Context, q PageQuery) (*InquiryPageResult, error) {
	const op = "service/inquiry/InquiryPage"

	state, err := loadPage(ctx, s.inquiryPager, q, s.cfg.Limits.Max)
	if err != nil {
		if errors.Is(err, ErrInvalidArgument) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		log.From(ctx).Error("inquiry page load failed", "op", op, "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	items := filterPage(s.inquiryPager.Items(), func(in models.Inquiry) bool {
		return matches(q.Search, "", "", in.FullName, in.Email, in.PhoneNumber, in.Comments)
	})

	return &InquiryPageResult{Items: items, State: PageState(state)}, nil
}
