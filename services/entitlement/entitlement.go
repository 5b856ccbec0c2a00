package entitlement

import (
	"fmt"
)

// Tier is a subscription level. The set is closed; anything else is a
// caller error surfaced by ParseTier.
type Tier string

const (
	TierFree    Tier = "free"
	TierPro     Tier = "pro"
	TierPremium Tier = "premium"
)

func ParseTier(s string) (Tier, error) {
	switch Tier(s) {
	case TierFree, TierPro, TierPremium:
		return Tier(s), nil
	}
	return "", fmt.Errorf("unknown subscription tier %q", s)
}

// Feature is a gated capability.
type Feature string

const (
	FeatureBasicAnalytics     Feature = "basic_analytics"
	FeatureAdvancedAnalytics  Feature = "advanced_analytics"
	FeatureAIRecommendations  Feature = "ai_recommendations"
	FeatureAutomationTools    Feature = "automation_tools"
	FeaturePrioritySupport    Feature = "priority_support"
	FeatureEarlyAccess        Feature = "early_access"
	FeatureUnlimitedPlatforms Feature = "unlimited_platforms"
	FeatureCustomAutomations  Feature = "custom_automations"
)

func ParseFeature(s string) (Feature, error) {
	if _, ok := featureTable[Feature(s)]; !ok {
		return "", fmt.Errorf("unknown feature %q", s)
	}
	return Feature(s), nil
}

// featureTable maps each feature to the tiers it is granted to. Tiers are
// matched as plain labels against these explicit allow-lists: there is no
// tier ordering or inheritance, so a feature can be premium-only without
// implying anything about pro.
var featureTable = map[Feature][]Tier{
	FeatureBasicAnalytics:     {TierFree, TierPro, TierPremium},
	FeatureAdvancedAnalytics:  {TierPro, TierPremium},
	FeatureAIRecommendations:  {TierPro, TierPremium},
	FeatureAutomationTools:    {TierPro, TierPremium},
	FeaturePrioritySupport:    {TierPremium},
	FeatureEarlyAccess:        {TierPremium},
	FeatureUnlimitedPlatforms: {TierPro, TierPremium},
	FeatureCustomAutomations:  {TierPremium},
}

// Resolver answers feature-entitlement questions from the static table.
// It is stateless and safe for concurrent use.
type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

// HasAccess reports whether tier is on the feature's allow-list. Unknown
// features and unknown tiers resolve to false: the gate fails closed.
func (r *Resolver) HasAccess(tier Tier, feature Feature) bool {
	for _, t := range featureTable[feature] {
		if t == tier {
			return true
		}
	}
	return false
}

// FeaturesFor enumerates the features granted to tier, in stable order.
func (r *Resolver) FeaturesFor(tier Tier) []Feature {
	out := make([]Feature, 0, len(allFeatures))
	for _, f := range allFeatures {
		if r.HasAccess(tier, f) {
			out = append(out, f)
		}
	}
	return out
}

// allFeatures fixes the enumeration order of FeaturesFor.
var allFeatures = []Feature{
	FeatureBasicAnalytics,
	FeatureAdvancedAnalytics,
	FeatureAIRecommendations,
	FeatureAutomationTools,
	FeaturePrioritySupport,
	FeatureEarlyAccess,
	FeatureUnlimitedPlatforms,
	FeatureCustomAutomations,
}
