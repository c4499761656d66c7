package service

import (
	"context"
	"errors"
	"testing"
)

// 空内容校验在任何仓库访问之前完成，用零依赖的服务实例即可验证

func TestConversationService_Send_EmptyContent(t *testing.T) {
	svc := NewConversationService(nil, nil, nil, nil)

	tests := []struct {
		name    string
		content string
	}{
		{name: "empty string", content: ""},
		{name: "spaces only", content: "   "},
		{name: "tabs and newlines", content: "\t\n "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Send(context.Background(), 1001, 2001, tt.content)
			if !errors.Is(err, ErrEmptyContent) {
				t.Errorf("Expected ErrEmptyContent, got %v", err)
			}
		})
	}
}

func TestConversationService_Edit_EmptyContent(t *testing.T) {
	svc := NewConversationService(nil, nil, nil, nil)

	_, err := svc.Edit(context.Background(), 1001, 3001, "  ")
	if !errors.Is(err, ErrEmptyContent) {
		t.Errorf("Expected ErrEmptyContent, got %v", err)
	}
}
