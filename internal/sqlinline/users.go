// Package sqlinline holds every SQL statement as a marked constant. The
// first line of each statement is a `--sql <uuid>` marker the SQLRunner
// strips and logs, so query traffic is attributable in the logs without
// shipping query text.
package sqlinline

// QSelectUserByID loads the full account row, including the legacy
// subscription-signal columns the tier is derived from and the three
// coordinate pairs discovery selects between.
const QSelectUserByID = `--sql 5775afb7-e807-4340-a6c0-cd59d0261b2f
select
    id,
    email,
    coalesce(name, '') as name,
    coalesce(business_name, '') as business_name,
    coalesce(display_name, '') as display_name,
    coalesce(full_name, '') as full_name,
    coalesce(suburb, '') as suburb,
    coalesce(role, 'user') as role,
    is_premium,
    coalesce(subscription_status, '') as subscription_status,
    coalesce(active_plan, '') as active_plan,
    coalesce(subcontractor_plan, '') as subcontractor_plan,
    coalesce(subcontractor_sub_status, '') as subcontractor_sub_status,
    location_lat, location_lng,
    base_lat, base_lng,
    search_lat, search_lng,
    created_at,
    updated_at
from users
where id = $1::uuid
limit 1;
`
