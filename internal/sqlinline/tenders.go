package sqlinline

const QInsertTender = `--sql fc566d1a-ee8e-4a74-829d-6769b4feeec2
insert into tenders (id, owner_id, title, description, trade, suburb, status, deleted, created_at, updated_at)
values ($1::uuid, $2::uuid, $3, $4, $5, $6, $7, false, now(), now())
returning created_at, updated_at;
`

// QCountQuotaTenders counts the owner's tenders in quota-relevant states
// created at or after $2. Soft-deleted rows still count: deleting a tender
// does not reduce quota pressure inside the window.
const QCountQuotaTenders = `--sql 8ac12ec4-6f5c-40cd-bf20-663724d197e8
select count(*)
from tenders
where owner_id = $1::uuid
  and status in ('published', 'live', 'pending_approval')
  and created_at >= $2;
`

const QSelectTenderByID = `--sql 2ee3aaed-e059-4d77-bae4-c2cbad468d48
select id, owner_id, title, description, trade, suburb, status, deleted, created_at, updated_at
from tenders
where id = $1::uuid
  and deleted = false
limit 1;
`
