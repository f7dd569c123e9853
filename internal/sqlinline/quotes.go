package sqlinline

const QInsertQuote = `--sql 3cb5c2ae-be68-4755-b0ce-dffd7bddc7a5
insert into quotes (id, tender_id, user_id, amount_cents, message, created_at)
values ($1::uuid, $2::uuid, $3::uuid, $4, $5, now())
returning created_at;
`

const QCountQuotesByTenderAndUser = `--sql bec39a0f-a66d-485b-840b-2625a82514c3
select count(*)
from quotes
where tender_id = $1::uuid
  and user_id = $2::uuid;
`
