package service

import (
	"context"
	"strings"
	"testing"

	"ai-stylist-be/internal/dto"
	"ai-stylist-be/internal/entity"
	"ai-stylist-be/internal/repository/memory"
	"ai-stylist-be/pkg/stylist"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatFixture(t *testing.T) (*fakeRepositoryFactory, *fakeGenerator, IChatService) {
	t.Helper()
	factory := newFakeFactory()
	generator := &fakeGenerator{reply: "Try a linen shirt with chinos."}
	svc := NewChatService(factory, memory.NewChatSessionRepository(), generator, nopLogger{})
	return factory, generator, svc
}

func completeProfile(userId uuid.UUID) *entity.Profile {
	bodyShape := "athletic"
	height := "172cm"
	return &entity.Profile{
		Id:               userId,
		FullName:         "Sam",
		Gender:           entity.GenderMale,
		SkinTone:         "Tan",
		TopSize:          "L",
		BottomSize:       "XL",
		Style:            "Minimal",
		BodyShape:        &bodyShape,
		Height:           &height,
		ProfileCompleted: true,
	}
}

func TestChatHistoryStartsGuidedFlowForNewUser(t *testing.T) {
	_, _, svc := newChatFixture(t)
	userId := uuid.New()

	resp, err := svc.History(context.Background(), userId)
	require.NoError(t, err)

	require.Len(t, resp.Messages, 2)
	assert.Equal(t, stylist.GreetingMessage, resp.Messages[0].Text)
	assert.Equal(t, stylist.QuestionBodyShape, resp.Messages[1].Text)
	assert.False(t, resp.Messages[0].IsUser)
	assert.Equal(t, stylist.QuickSuggestions, resp.Suggestions)
}

func TestChatHistorySkipsGuidedFlowForCompleteProfile(t *testing.T) {
	factory, _, svc := newChatFixture(t)
	userId := uuid.New()
	factory.uow.profileRepo.profiles[userId] = completeProfile(userId)

	resp, err := svc.History(context.Background(), userId)
	require.NoError(t, err)

	require.Len(t, resp.Messages, 1)
	assert.Equal(t, stylist.GreetingMessage, resp.Messages[0].Text)
}

func TestChatGuidedFlowPersistsEachAnswer(t *testing.T) {
	factory, generator, svc := newChatFixture(t)
	userId := uuid.New()
	ctx := context.Background()

	_, err := svc.History(ctx, userId)
	require.NoError(t, err)

	steps := []struct {
		answer    string
		wantField string
		wantReply string
	}{
		{"athletic", "body_shape", stylist.QuestionHeight},
		{"172cm", "height", stylist.QuestionSkinTone},
		{"medium", "skin_tone", stylist.CompletionMessage},
	}

	for _, step := range steps {
		resp, err := svc.Send(ctx, userId, &dto.SendChatRequest{Message: step.answer})
		require.NoError(t, err)
		assert.Equal(t, ChatModeGuided, resp.Mode)
		assert.Equal(t, step.wantReply, resp.Reply.Text)
		assert.Equal(t, []string{step.answer}, factory.uow.profileRepo.fieldWrites[step.wantField])
	}

	// The generator is never consulted during onboarding.
	assert.Empty(t, generator.prompts)
}

func TestChatGatesIncompleteProfile(t *testing.T) {
	factory, generator, svc := newChatFixture(t)
	userId := uuid.New()
	ctx := context.Background()

	profile := completeProfile(userId)
	profile.Gender = entity.GenderUnset
	profile.TopSize = ""
	profile.BottomSize = ""
	factory.uow.profileRepo.profiles[userId] = profile

	resp, err := svc.Send(ctx, userId, &dto.SendChatRequest{Message: "What should I wear to a wedding?"})
	require.NoError(t, err)

	assert.Equal(t, ChatModeGated, resp.Mode)
	assert.Contains(t, resp.Reply.Text, "top size, bottom size, gender")
	assert.Empty(t, generator.prompts)
	assert.Empty(t, factory.uow.recRepo.recs)
}

func TestChatStylistModeGeneratesAndStoresRecommendation(t *testing.T) {
	factory, generator, svc := newChatFixture(t)
	userId := uuid.New()
	ctx := context.Background()

	factory.uow.profileRepo.profiles[userId] = completeProfile(userId)

	resp, err := svc.Send(ctx, userId, &dto.SendChatRequest{Message: "Outfit for a Date"})
	require.NoError(t, err)

	assert.Equal(t, ChatModeStylist, resp.Mode)
	assert.Equal(t, "Try a linen shirt with chinos.", resp.Reply.Text)
	assert.True(t, resp.Sent.IsUser)

	require.Len(t, generator.prompts, 1)
	assert.True(t, strings.Contains(generator.prompts[0], "Outfit for a Date"))

	require.Len(t, factory.uow.recRepo.recs, 1)
	rec := factory.uow.recRepo.recs[0]
	assert.Equal(t, userId, rec.UserId)
	assert.Equal(t, "Try a linen shirt with chinos.", rec.RecommendationText)
}

func TestChatGeneratorFailureYieldsFallbackReply(t *testing.T) {
	factory, generator, svc := newChatFixture(t)
	userId := uuid.New()
	generator.err = assert.AnError
	factory.uow.profileRepo.profiles[userId] = completeProfile(userId)

	resp, err := svc.Send(context.Background(), userId, &dto.SendChatRequest{Message: "help"})
	require.NoError(t, err)

	assert.Equal(t, ChatModeStylist, resp.Mode)
	assert.Equal(t, stylist.UnavailableMessage, resp.Reply.Text)
	assert.Empty(t, factory.uow.recRepo.recs)

	// The conversation stays usable: a later turn with a healthy
	// generator succeeds.
	generator.err = nil
	resp, err = svc.Send(context.Background(), userId, &dto.SendChatRequest{Message: "help again"})
	require.NoError(t, err)
	assert.Equal(t, "Try a linen shirt with chinos.", resp.Reply.Text)
}

func TestChatResetDropsSession(t *testing.T) {
	factory, _, svc := newChatFixture(t)
	userId := uuid.New()
	ctx := context.Background()
	factory.uow.profileRepo.profiles[userId] = completeProfile(userId)

	first, err := svc.History(ctx, userId)
	require.NoError(t, err)
	_, err = svc.Send(ctx, userId, &dto.SendChatRequest{Message: "Summer Styles"})
	require.NoError(t, err)

	svc.Reset(userId)

	fresh, err := svc.History(ctx, userId)
	require.NoError(t, err)
	assert.Len(t, fresh.Messages, len(first.Messages))
}
