package types

// ChannelFocus selects which campaign assets are rendered for a request.
type ChannelFocus string

// Channel focus values mirror the campaign configuration options.
const (
	ChannelLinkedIn ChannelFocus = "LinkedIn Only"
	ChannelEmail    ChannelFocus = "Email Only"
	ChannelMulti    ChannelFocus = "Multi-Channel"
)

// CampaignAssets holds the channel-specific copy derived from an accepted
// strategy. Channels outside the requested focus are left empty.
type CampaignAssets struct {
	LinkedInPost string `json:"linkedin_post,omitempty"`
	ColdEmail    string `json:"cold_email,omitempty"`
	LandingHero  string `json:"landing_hero,omitempty"`
	PaidAd       string `json:"paid_ad,omitempty"`
}

// IncludesLinkedIn reports whether the focus covers the LinkedIn channel.
func (c ChannelFocus) IncludesLinkedIn() bool {
	return c == ChannelLinkedIn || c == ChannelMulti || c == ""
}

// IncludesEmail reports whether the focus covers the email channel.
func (c ChannelFocus) IncludesEmail() bool {
	return c == ChannelEmail || c == ChannelMulti || c == ""
}

// IncludesWeb reports whether the focus covers landing hero and paid ad copy.
func (c ChannelFocus) IncludesWeb() bool {
	return c == ChannelMulti || c == ""
}
