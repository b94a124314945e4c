package api

import "context"

// Sample texts used by the demo comparison.
const (
	SampleFetchRewards = "The easiest way to earn points with Fetch Rewards is to just shop for the products you already love. " +
		"If you have any participating brands on your receipt, you'll get points based on the cost of the products. " +
		"You don't need to clip any coupons or scan individual barcodes. Just scan each grocery receipt after you " +
		"shop and we'll find the savings for you."
	SampleParaphrase = "The easiest way to earn points with Fetch Rewards is to just shop for the items you already buy. " +
		"If you have any eligible brands on your receipt, you will get points based on the total cost of the " +
		"products. You do not need to cut out any coupons or scan individual UPCs. Just scan your receipt " +
		"after you check out and we will find the savings for you."
	SampleSpecialOffers = "We are always looking for opportunities for you to earn more points, which is why we also give you " +
		"a selection of Special Offers. These Special Offers are opportunities to earn bonus points on top " +
		"of the regular points you earn every time you purchase a participating brand. No need to pre-select " +
		"these offers, we'll give you the points whether or not you knew about the offer. We just think it is " +
		"easier that way."
	SampleUnrelated = `Text without "matching" words.`
)

// DemoPair is one of the built-in sample comparisons.
type DemoPair struct {
	Name        string
	Description string
	Text1       string
	Text2       string
}

// DemoPairs returns the sample comparisons in display order.
func DemoPairs() []DemoPair {
	return []DemoPair{
		{Name: "t1/t1", Description: "identical text", Text1: SampleFetchRewards, Text2: SampleFetchRewards},
		{Name: "t1/t2", Description: "paraphrase", Text1: SampleFetchRewards, Text2: SampleParaphrase},
		{Name: "t1/t3", Description: "same topic, different text", Text1: SampleFetchRewards, Text2: SampleSpecialOffers},
		{Name: "t1/t4", Description: "no shared words", Text1: SampleFetchRewards, Text2: SampleUnrelated},
	}
}

// Demo scores every sample pair.
func (s *SimilarityService) Demo(ctx context.Context) ([]DemoResult, error) {
	pairs := DemoPairs()
	results := make([]DemoResult, 0, len(pairs))
	for _, pair := range pairs {
		resp, err := s.Compare(ctx, pair.Text1, pair.Text2)
		if err != nil {
			return nil, err
		}
		results = append(results, DemoResult{
			Pair:        pair.Name,
			Description: pair.Description,
			Score:       resp.Score,
			Formatted:   resp.Formatted,
		})
	}
	return results, nil
}
