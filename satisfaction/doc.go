// Package satisfaction derives welfare metrics from a matching: how highly
// each agent ranks the partner it received, per group and overall.
//
// Metrics per group (GroupStats):
//   - AvgRank: mean rank of the partner in the agent's own list (0 = best).
//   - Score  : 100·(1 − AvgRank/(n−1)); 100 when n ≤ 1.
//   - Top1Pct: share of agents matched with their first choice, in percent.
//   - Top3Pct: share with rank < 3, in percent. The threshold is literal,
//     so for n < 3 every agent counts.
//   - RankSum: total rank over the group.
//
// Aggregates (Report):
//   - EgalitarianCost: RankSum(proposers) + RankSum(receivers).
//   - FairnessGap    : |Score(proposers) − Score(receivers)|.
package satisfaction
