package sqlinline

const QInsertAvailability = `--sql 64a72be5-2207-4a7f-a973-e42acb841a72
insert into availability (id, user_id, day, note, created_at)
values ($1::uuid, $2::uuid, $3::date, $4, now())
returning created_at;
`
