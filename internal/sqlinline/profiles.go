package sqlinline

// QCandidatesInBox is the discovery prefilter: public profiles whose current
// OR base coordinates fall inside the bounding box, excluding the viewer.
// The box over-selects; the engine applies the exact haversine cut.
// Args: $1 viewer id, $2 min lat, $3 max lat, $4 min lng, $5 max lng.
const QCandidatesInBox = `--sql 018bc2b2-01f2-4c3a-aa14-fb19dd38a2a7
select
    id,
    coalesce(name, '') as name,
    coalesce(business_name, '') as business_name,
    coalesce(display_name, '') as display_name,
    coalesce(full_name, '') as full_name,
    coalesce(suburb, '') as suburb,
    coalesce(avatar_url, '') as avatar_url,
    coalesce(is_verified, false) as is_verified,
    coalesce(primary_trade, '') as primary_trade,
    coalesce(additional_trades, '') as additional_trades,
    coalesce(trades, '') as trades,
    location_lat, location_lng,
    base_lat, base_lng,
    coalesce(premium_ranking, false) as premium_ranking
from profiles
where is_public = true
  and id <> $1::uuid
  and (
        (location_lat between $2 and $3 and location_lng between $4 and $5)
     or (base_lat between $2 and $3 and base_lng between $4 and $5)
  );
`
